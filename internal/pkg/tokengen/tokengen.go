package tokengen

import (
	"crypto/rand"
	"encoding/base32"
	"io"
	"strings"

	"coupon-ledger/internal/pkg/errs"
)

// TokenBytes gives 160 bits of entropy per token.
const TokenBytes = 20

var ErrEntropy = errs.New("failed to read random bytes")

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type Generator interface {
	NewToken() (string, error)
}

type RandomGenerator struct {
	source io.Reader
}

func NewRandomGenerator() Generator {
	return &RandomGenerator{source: rand.Reader}
}

// NewGeneratorFromReader is used by tests to feed deterministic bytes.
func NewGeneratorFromReader(r io.Reader) *RandomGenerator {
	return &RandomGenerator{source: r}
}

// NewToken returns a 32 character lowercase base32 string.
func (g *RandomGenerator) NewToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", errs.Mark(errs.Wrap(err, "token entropy"), ErrEntropy)
	}
	return strings.ToLower(encoding.EncodeToString(buf)), nil
}
