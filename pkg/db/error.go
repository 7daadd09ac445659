package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// PostgreSQL (error code 23505)
	if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		return true
	}

	// SQLite (error code 2067)
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return true
	}

	return false
}

// DuplicateKeyField guesses which column triggered a unique violation by
// scanning the driver message for one of the candidate column names.
// Returns "" when none matches.
func DuplicateKeyField(err error, candidates ...string) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, field := range candidates {
		if strings.Contains(msg, field) {
			return field
		}
	}
	return ""
}
