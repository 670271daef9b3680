package token

import (
	"strings"

	"github.com/d-becker/schnapsen/internal/rng"
)

// alphabet is safe to use in URLs and headers
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// Generate returns a random string of length n drawn from alphabet
// Pass rng.Crypto{} for anything that must stay secret.
func Generate(g rng.Generator, n int) string {
	var sb strings.Builder
	sb.Grow(n)

	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[g.Intn(len(alphabet))])
	}

	return sb.String()
}
