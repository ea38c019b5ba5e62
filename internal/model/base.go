package model

import (
	"github.com/google/uuid"
)

// newID returns the id assigned to a record that was created without one.
func newID(current string) string {
	if current != "" {
		return current
	}
	return uuid.NewString()
}
