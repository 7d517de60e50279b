package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	n := Normalizer{MinLength: 100, MaxLength: 15000}

	t.Run("rejects text below the minimum", func(t *testing.T) {
		_, err := n.Normalize(strings.Repeat("a", 40))
		require.Error(t, err)
		assert.Equal(t, ErrTooShort, CategoryOf(err))
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := n.Normalize("   \n\n  ")
		require.Error(t, err)
		assert.Equal(t, ErrTooShort, CategoryOf(err))
	})

	t.Run("passes valid text through unchanged", func(t *testing.T) {
		text := strings.Repeat("lorem ipsum ", 20)
		got, err := n.Normalize(text)
		require.NoError(t, err)
		assert.Equal(t, strings.TrimSpace(text), got)
	})

	t.Run("cleans line endings", func(t *testing.T) {
		text := strings.Repeat("line one\r\nline two\f\n\n\n\nline three\n", 10)
		got, err := n.Normalize(text)
		require.NoError(t, err)
		assert.NotContains(t, got, "\r")
		assert.NotContains(t, got, "\f")
		assert.NotContains(t, got, "\n\n\n")
	})

	t.Run("truncates at the maximum with a marker", func(t *testing.T) {
		text := strings.Repeat("a", n.MaxLength+1)
		got, err := n.Normalize(text)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("a", n.MaxLength)+TruncationMarker, got)
	})

	t.Run("never fails on over-long input", func(t *testing.T) {
		_, err := n.Normalize(strings.Repeat("b", n.MaxLength*3))
		require.NoError(t, err)
	})

	t.Run("idempotent on normalized text of valid length", func(t *testing.T) {
		text := strings.Repeat("experience with Go services\n\n", 30)
		once, err := n.Normalize(text)
		require.NoError(t, err)

		twice, err := n.Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}
