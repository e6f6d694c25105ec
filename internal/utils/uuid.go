package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for catalog records and
// nonces for simulated transactions.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 if the clock-based
// variant cannot be produced.
func (g *UUIDGenerator) Generate() string {
	return g.next().String()
}

// Nonce returns the 16 raw bytes of a fresh identifier.
func (g *UUIDGenerator) Nonce() []byte {
	id := g.next()
	return id[:]
}

func (g *UUIDGenerator) next() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v7
}
