package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rocketscienceinc/checkers-client/internal/session"
)

const viewTimeout = 2 * time.Second

type viewSource interface {
	QueryView(ctx context.Context) (session.View, error)
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	StatusHandler(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	views viewSource
}

func NewHandlers(views viewSource) Handlers {
	return &handlers{views: views}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// StatusHandler - reports the session view as seen by the session loop.
func (that *handlers) StatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), viewTimeout)
	defer cancel()

	view, err := that.views.QueryView(ctx)
	if err != nil {
		http.Error(w, "Session unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(view); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
