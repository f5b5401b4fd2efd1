package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// ShortID returns an 8-character unique suffix for collision-free artifact names
func ShortID() string {
	return uuid.New().String()[:8]
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	CheckID     ID
	FeatureName string
)

func (id CheckID) String() string { return ID(id).String() }

func (n FeatureName) String() string { return string(n) }

// ParseCheckID parses a string into CheckID
func ParseCheckID(s string) (CheckID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("check ID cannot be empty")
	}
	return CheckID(s), nil
}
