package idgen

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out booking identifiers.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct {
	prefix string
}

func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// NewID returns prefix-XXXXXXXXXXXX built from the random bits of a v4 UUID.
func (g *UUIDGenerator) NewID() string {
	id := uuid.New()
	raw := strings.ReplaceAll(id.String(), "-", "")
	return g.prefix + "-" + strings.ToUpper(raw[len(raw)-12:])
}

// Sequence is a deterministic generator for tests.
type Sequence struct {
	prefix string
	next   atomic.Int64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	n := s.next.Add(1)
	return fmt.Sprintf("%s-%06d", s.prefix, n)
}
