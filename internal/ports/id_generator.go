package ports

import "github.com/google/uuid"

// IDGenerator produces a fresh unique string on every call.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
