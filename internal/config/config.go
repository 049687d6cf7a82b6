package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string   `yaml:"http-port" env:"HTTP_PORT" env-default:""`
	Server   Server   `yaml:"server"`
	Board    Board    `yaml:"board"`
	Notifier Notifier `yaml:"notifier"`
	Session  Session  `yaml:"session"`
}

type Server struct {
	Scheme           string        `yaml:"scheme" env:"SERVER_SCHEME" env-default:"ws"`
	Host             string        `yaml:"host" env:"SERVER_HOST" env-default:"localhost"`
	Port             int           `yaml:"port" env:"SERVER_PORT" env-default:"10000"`
	Path             string        `yaml:"path" env:"SERVER_PATH" env-default:"/ws"`
	HandshakeTimeout time.Duration `yaml:"handshake-timeout" env:"SERVER_HANDSHAKE_TIMEOUT" env-default:"10s"`
	WriteTimeout     time.Duration `yaml:"write-timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"5s"`
}

// Board places the board in client pixel space for pointer input.
type Board struct {
	OriginX    float64 `yaml:"origin-x" env:"BOARD_ORIGIN_X" env-default:"0"`
	OriginY    float64 `yaml:"origin-y" env:"BOARD_ORIGIN_Y" env-default:"0"`
	PixelWidth float64 `yaml:"pixel-width" env:"BOARD_PIXEL_WIDTH" env-default:"400"`
}

type Notifier struct {
	DismissAfter time.Duration `yaml:"dismiss-after" env:"NOTIFIER_DISMISS_AFTER" env-default:"3s"`
	NoHaptics    bool          `yaml:"disable-haptics" env:"NOTIFIER_DISABLE_HAPTICS"`
}

type Session struct {
	DefaultRoomName string `yaml:"default-room-name" env:"SESSION_DEFAULT_ROOM_NAME" env-default:"My room"`
	MailboxSize     int    `yaml:"mailbox-size" env:"SESSION_MAILBOX_SIZE" env-default:"64"`
	OutboxSize      int    `yaml:"outbox-size" env:"SESSION_OUTBOX_SIZE" env-default:"16"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return config, nil
}

// GetURL - returns the websocket endpoint of the game server.
func (that *Server) GetURL() string {
	u := url.URL{
		Scheme: that.Scheme,
		Host:   that.Host + ":" + strconv.Itoa(that.Port),
		Path:   that.Path,
	}

	return u.String()
}
