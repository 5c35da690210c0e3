package tokengen_test

import (
	"bytes"
	"io"
	"testing"

	"coupon-ledger/internal/pkg/tokengen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator_NewToken(t *testing.T) {
	gen := tokengen.NewRandomGenerator()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		tok, err := gen.NewToken()
		require.NoError(t, err)
		assert.Len(t, tok, 32)
		assert.Regexp(t, `^[a-z2-7]{32}$`, tok)
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %s", tok)
		seen[tok] = struct{}{}
	}
}

func TestGeneratorFromReader(t *testing.T) {
	t.Run("success: deterministic bytes", func(t *testing.T) {
		gen := tokengen.NewGeneratorFromReader(bytes.NewReader(make([]byte, tokengen.TokenBytes)))
		tok, err := gen.NewToken()
		require.NoError(t, err)
		assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", tok)
	})

	t.Run("error: short entropy source", func(t *testing.T) {
		gen := tokengen.NewGeneratorFromReader(bytes.NewReader([]byte{1, 2, 3}))
		_, err := gen.NewToken()
		assert.ErrorIs(t, err, tokengen.ErrEntropy)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
