package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for requests and traces.
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator whose identifiers start with prefix.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a new UUIDv7, falling back to a random UUIDv4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return g.prefix + uuid.NewString()
	}

	return g.prefix + v7.String()
}
