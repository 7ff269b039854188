package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseOptionalUUID parses s, returning nil for an empty string.
func ParseOptionalUUID(s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// DocumentNumber formats a yearly document number, e.g. ORD-2026-007.
func DocumentNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// DocumentPrefix returns the "PREFIX-YEAR-" part used to look up the
// current sequence for a year.
func DocumentPrefix(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}
