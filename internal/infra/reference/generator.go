// Package reference generates order references.
package reference

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"

	"vora/config"
	"vora/internal/domain/service"
)

const (
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLength = 6
)

type generator struct {
	prefix string
	now    func() time.Time
}

// NewGenerator creates a generator producing PREFIX-YEAR-XXXXXX references.
func NewGenerator(cfg *config.Config) service.ReferenceGenerator {
	return newGenerator(cfg.Storefront.ReferencePrefix, time.Now)
}

func newGenerator(prefix string, now func() time.Time) *generator {
	return &generator{prefix: prefix, now: now}
}

// Generate returns a fresh random reference. Uniqueness is not checked.
func (g *generator) Generate() string {
	var b strings.Builder
	b.Grow(len(g.prefix) + 6 + suffixLength)

	b.WriteString(g.prefix)
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(g.now().Year()))
	b.WriteByte('-')

	limit := big.NewInt(int64(len(alphabet)))
	for range suffixLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand.Reader does not fail on supported platforms.
			panic(err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}

	return b.String()
}
