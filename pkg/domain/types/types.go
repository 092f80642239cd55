package types

import (
	"github.com/google/uuid"
)

// SubjectID identifies the entity added to or removed from the blocklist.
// The panel calls it "guid" but no format is enforced.
type SubjectID string

// String returns the string representation
func (id SubjectID) String() string {
	return string(id)
}

// InvocationID identifies a single relay invocation
type InvocationID string

// String returns the string representation
func (id InvocationID) String() string {
	return string(id)
}

// NewInvocationID creates a new InvocationID using UUID v7
func NewInvocationID() InvocationID {
	id, err := uuid.NewV7()
	if err != nil {
		return InvocationID(uuid.New().String())
	}
	return InvocationID(id.String())
}
