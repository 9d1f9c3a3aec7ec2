package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Generator creates opaque tokens, e.g. lock ownership tokens.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator emits 128-bit hex tokens, optionally prefixed with an
// owner label such as the host name.
type RandomGenerator struct {
	prefix string
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func NewPrefixedGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: strings.TrimSpace(prefix)}
}

func (g *RandomGenerator) NewID() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	token := hex.EncodeToString(buf[:])
	if g == nil || g.prefix == "" {
		return token, nil
	}
	return g.prefix + "-" + token, nil
}
