package entity

import (
	"strings"

	"github.com/rocketscienceinc/checkers-client/internal/apperror"
)

const RoomCodeLength = 6

// SanitizeRoomCode upper-cases raw, drops everything outside [A-Z0-9] and keeps at most six characters.
func SanitizeRoomCode(raw string) string {
	upper := strings.ToUpper(raw)

	var code strings.Builder
	for _, r := range upper {
		if code.Len() == RoomCodeLength {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			code.WriteRune(r)
		}
	}

	return code.String()
}

// NormalizeRoomCode sanitizes raw and requires exactly six characters to remain.
func NormalizeRoomCode(raw string) (string, error) {
	code := SanitizeRoomCode(raw)
	if len(code) != RoomCodeLength {
		return "", apperror.ErrInvalidRoomCode
	}

	return code, nil
}
