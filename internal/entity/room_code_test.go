package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers-client/internal/apperror"
)

func TestSanitizeRoomCode(t *testing.T) {
	t.Run("Strips punctuation and upper-cases letters", func(t *testing.T) {
		// Given: a code typed with lower case and symbols
		raw := "ab-12!"

		// When: sanitizing it
		code := SanitizeRoomCode(raw)

		// Then: only upper-case alphanumerics remain
		assert.Equal(t, "AB12", code)
	})

	t.Run("Truncates to six characters", func(t *testing.T) {
		// Given: a code longer than a room code
		raw := "abc123xyz"

		// When: sanitizing it
		code := SanitizeRoomCode(raw)

		// Then: it keeps the first six characters
		assert.Equal(t, "ABC123", code)
	})

	t.Run("Never yields characters outside A-Z and 0-9", func(t *testing.T) {
		inputs := []string{"", "   ", "ÄÖÜ-éè", "a b c 1 2 3 4", "!!@@##", "ｆｕｌｌ１２", "zz99zz99"}

		for _, raw := range inputs {
			// When: sanitizing arbitrary input
			code := SanitizeRoomCode(raw)

			// Then: the result is short and clean
			assert.LessOrEqual(t, len(code), RoomCodeLength, raw)
			for _, r := range code {
				assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'), "%q from %q", r, raw)
			}
		}
	})
}

func TestNormalizeRoomCode(t *testing.T) {
	t.Run("Accepts a code that sanitizes to six characters", func(t *testing.T) {
		// Given: a padded lower-case code
		raw := " abc-123 "

		// When: normalizing it
		code, err := NormalizeRoomCode(raw)

		// Then: it is accepted in canonical form
		require.NoError(t, err)
		assert.Equal(t, "ABC123", code)
	})

	t.Run("Rejects a code that is too short", func(t *testing.T) {
		// Given: a code with only four valid characters
		raw := "ab-12!"

		// When: normalizing it
		code, err := NormalizeRoomCode(raw)

		// Then: it is rejected
		require.ErrorIs(t, err, apperror.ErrInvalidRoomCode)
		assert.Empty(t, code)
	})
}
