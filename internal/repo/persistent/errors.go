package persistent

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden means the record exists but the principal does not own it.
	ErrForbidden = errors.New("record not owned by principal")
	// ErrDuplicate means a uniqueness constraint rejected the write.
	ErrDuplicate = errors.New("duplicate record")
)

// isUniqueIndexError recognizes the store's unique-index violation message.
func isUniqueIndexError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already contains") || strings.Contains(msg, "unique")
}

