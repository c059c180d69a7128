package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string. Vault ids and user handles
// sort by creation time in the backend tables.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IDFunc adapts a plain function to the id generator interfaces of the
// local collaborators.
type IDFunc func() string

func (f IDFunc) Generate() string {
	return f()
}
