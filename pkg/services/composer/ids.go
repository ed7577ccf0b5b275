package composer

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator supplies fresh identifiers for sections and widgets.
// Injected so tests can use a deterministic sequence.
type IDGenerator interface {
	Next() string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns the production id generator.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) Next() string {
	return uuid.NewString()
}

type sequenceGenerator struct {
	prefix string
	n      int
}

// NewSequenceGenerator returns a generator yielding "<prefix>-1",
// "<prefix>-2", ... in order. Meant for tests.
func NewSequenceGenerator(prefix string) IDGenerator {
	return &sequenceGenerator{prefix: prefix}
}

func (g *sequenceGenerator) Next() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
