package token_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hngvu/payfastacy/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestGenerator_Generate(t *testing.T) {
	neverTaken := func(ctx context.Context, candidate string) (bool, error) {
		return false, nil
	}

	t.Run("default length and alphabet", func(t *testing.T) {
		g := token.NewGenerator(token.Config{})

		content, err := g.Generate(context.Background(), neverTaken)

		assert.NoError(t, err)
		assert.Len(t, content, token.DefaultLength)
		for _, r := range content {
			assert.True(t, strings.ContainsRune(token.Alphabet, r))
		}
	})

	t.Run("configured length", func(t *testing.T) {
		g := token.NewGenerator(token.Config{Length: 20})

		content, err := g.Generate(context.Background(), neverTaken)

		assert.NoError(t, err)
		assert.Len(t, content, 20)
	})

	t.Run("retries on collision until a free candidate", func(t *testing.T) {
		g := token.NewGenerator(token.Config{MaxAttempts: 5})

		seen := make(map[string]bool)
		calls := 0
		exists := func(ctx context.Context, candidate string) (bool, error) {
			calls++
			assert.False(t, seen[candidate], "candidate redrawn within one call")
			seen[candidate] = true
			return calls < 3, nil
		}

		content, err := g.Generate(context.Background(), exists)

		assert.NoError(t, err)
		assert.NotEmpty(t, content)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts after max attempts", func(t *testing.T) {
		g := token.NewGenerator(token.Config{MaxAttempts: 4})

		calls := 0
		alwaysTaken := func(ctx context.Context, candidate string) (bool, error) {
			calls++
			return true, nil
		}

		content, err := g.Generate(context.Background(), alwaysTaken)

		assert.ErrorIs(t, err, token.ErrExhausted)
		assert.Empty(t, content)
		assert.Equal(t, 4, calls)
	})

	t.Run("existence check failure propagates", func(t *testing.T) {
		g := token.NewGenerator(token.Config{})

		dbErr := errors.New("connection reset")
		exists := func(ctx context.Context, candidate string) (bool, error) {
			return false, dbErr
		}

		content, err := g.Generate(context.Background(), exists)

		assert.ErrorIs(t, err, dbErr)
		assert.Empty(t, content)
	})

	t.Run("sequential calls against the same state differ", func(t *testing.T) {
		g := token.NewGenerator(token.Config{})

		first, err := g.Generate(context.Background(), neverTaken)
		assert.NoError(t, err)

		second, err := g.Generate(context.Background(), neverTaken)
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
