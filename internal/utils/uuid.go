package utils

import "github.com/google/uuid"

// UUIDGenerator produces the identifiers used to tag a session in the log
// file, so all entries of one run can be grepped together.
type UUIDGenerator struct {
}

// NewUUIDGenerator creates a new UUIDGenerator instance.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered V7 UUID so that ids sort by creation
// time, falling back to a random V4 on the rare V7 generation failure.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
