package chat

import (
	"math"
	"time"
	"unicode/utf8"
)

// TypingConfig drives the synthetic typing delay that paces reply delivery.
type TypingConfig struct {
	CharsPerSecond int
	MinDelay       time.Duration
	MaxDelay       time.Duration
}

// DefaultTypingConfig matches a slow human typist: 5 chars/second bounded
// to [300ms, 10s].
func DefaultTypingConfig() TypingConfig {
	return TypingConfig{
		CharsPerSecond: 5,
		MinDelay:       300 * time.Millisecond,
		MaxDelay:       10 * time.Second,
	}
}

// Delay computes the pause before a reply of the given text is delivered.
// Pure function of the text length; a non-positive typing speed falls back
// to MinDelay.
func (c TypingConfig) Delay(text string) time.Duration {
	if c.CharsPerSecond <= 0 {
		return c.MinDelay
	}
	ms := math.Round(float64(utf8.RuneCountInString(text)) / float64(c.CharsPerSecond) * 1000)
	d := time.Duration(ms) * time.Millisecond
	if d < c.MinDelay {
		return c.MinDelay
	}
	if d > c.MaxDelay {
		return c.MaxDelay
	}
	return d
}
