package schema

import (
	"fmt"
	"strings"
)

// GenerationType is the strategy by which a primary-key value is produced.
type GenerationType uint8

// Generation strategies.
const (
	GenerationNone GenerationType = iota // Caller-supplied key.
	GenerationIdentity
	GenerationSequence
	GenerationAuto
	GenerationTable
)

var generationNames = [...]string{
	GenerationNone:     "NONE",
	GenerationIdentity: "IDENTITY",
	GenerationSequence: "SEQUENCE",
	GenerationAuto:     "AUTO",
	GenerationTable:    "TABLE",
}

// String returns the upper-case strategy name.
func (g GenerationType) String() string {
	if int(g) < len(generationNames) {
		return generationNames[g]
	}
	return fmt.Sprintf("GenerationType(%d)", g)
}

// ParseGenerationType parses a strategy name, case-insensitively. An empty
// string parses as GenerationNone.
func ParseGenerationType(s string) (GenerationType, error) {
	if s == "" {
		return GenerationNone, nil
	}
	for g, name := range generationNames {
		if strings.EqualFold(s, name) {
			return GenerationType(g), nil
		}
	}
	return GenerationNone, fmt.Errorf("schema: unknown generation strategy %q", s)
}
