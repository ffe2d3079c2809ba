package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns a random v4 uuid as 32 lowercase hex characters.
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewQuoteID tags a rate quote so logs and responses can be correlated.
func NewQuoteID() string { return "q_" + NewID32() }

// IsID32 reports whether s has the NewID32 shape.
func IsID32(s string) bool {
	if len(s) != 32 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
