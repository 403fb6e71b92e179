package utils

import (
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// Retry runs fn with exponential backoff. Errors matching one of the
// excluded sentinels are returned immediately without further attempts.
func Retry(cfg RetryConfig, fn func() error, excluded ...error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Millisecond * 100
	}

	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		for _, ex := range excluded {
			if errors.Is(err, ex) {
				return err
			}
		}

		if attempt == cfg.MaxAttempts {
			return err
		}

		time.Sleep(delay)

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return nil
}
