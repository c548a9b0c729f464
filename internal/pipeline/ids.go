package pipeline

import "github.com/google/uuid"

// IDFunc mints identifiers for outlines, sections, interactions and options.
type IDFunc func() string

// NewID returns a random UUID string.
func NewID() string { return uuid.NewString() }

func (f IDFunc) orDefault() IDFunc {
	if f == nil {
		return NewID
	}
	return f
}
