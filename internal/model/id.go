package model

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for products created without one.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUIDv4 identifiers.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator yields "<prefix>-1", "<prefix>-2", ... in order.
type SequenceGenerator struct {
	Prefix string
	next   int
}

// NewID returns the next identifier in the sequence.
func (g *SequenceGenerator) NewID() string {
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}
