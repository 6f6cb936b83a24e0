package models

import "github.com/google/uuid"

// NewID returns a fresh 36-character UUID string for primary keys.
func NewID() string {
	return uuid.NewString()
}
