package token

import (
	"math/rand"
	"testing"

	"github.com/d-becker/schnapsen/internal/rng"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	token := Generate(rng.Crypto{}, 8)
	assert.Equal(t, 8, len(token))
	assert.NotEqual(t, token, Generate(rng.Crypto{}, 8))

	assert.Regexp(t, `^[A-Za-z0-9_-]{64}$`, Generate(rng.Crypto{}, 64))
	assert.Equal(t, "", Generate(rng.Crypto{}, 0))
}

func TestGenerate_seeded(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(7)), 16)
	b := Generate(rand.New(rand.NewSource(7)), 16)
	assert.Equal(t, a, b)
}
