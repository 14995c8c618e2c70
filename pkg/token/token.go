// Package token generates short unique alphanumeric content strings used to
// correlate a pending payment with a bank-transfer memo.
package token

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	DefaultLength      = 11
	DefaultMaxAttempts = 10
)

var ErrExhausted = errors.New("GENERATION_EXHAUSTED")

// ExistsFunc reports whether a candidate is already taken. It must check the
// full historical record set, not just pending records.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

type Config struct {
	Length      int `mapstructure:"length"`
	MaxAttempts int `mapstructure:"max_attempts"`
}

type Generator struct {
	length      int
	maxAttempts int
}

func NewGenerator(cfg Config) *Generator {
	length := cfg.Length
	if length <= 0 {
		length = DefaultLength
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Generator{length: length, maxAttempts: maxAttempts}
}

// Generate draws random candidates until exists reports a miss. The token
// space is large enough that a collision is negligible, so a small bounded
// retry is sufficient; after maxAttempts hits it returns ErrExhausted.
func (g *Generator) Generate(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		candidate, err := g.draw()
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}

		if !taken {
			return candidate, nil
		}
	}

	return "", ErrExhausted
}

func (g *Generator) draw() (string, error) {
	buf := make([]byte, g.length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}

	return string(buf), nil
}
