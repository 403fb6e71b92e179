package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		wantErr := errors.New("persistent")
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry excluded errors", func(t *testing.T) {
		notFound := errors.New("not found")
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return notFound
		}, notFound)
		assert.ErrorIs(t, err, notFound)
		assert.Equal(t, 1, calls)
	})
}
