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
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Short returns the first 8 characters, enough to tell renders apart in logs
func (id ID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// RenderID identifies one execution of the dashboard renderer
type RenderID ID

// NewRenderID creates a new render identifier
func NewRenderID() RenderID { return RenderID(NewID()) }

func (id RenderID) String() string { return ID(id).String() }
func (id RenderID) Short() string { return ID(id).Short() }

// ParseRenderID parses a string into RenderID
func ParseRenderID(s string) (RenderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("render ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("render ID %q is not a UUID: %w", s, err)
	}
	return RenderID(s), nil
}
