package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique identifiers for token ids (the "jti" claim).
// UUIDv7 is preferred for its time-ordered layout; the random portion comes
// from crypto/rand, which satisfies the uniqueness requirement of one fresh
// id per token issuance.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
