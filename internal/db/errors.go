package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolationCode = "23505"

// IsUniqueViolation reports whether err was caused by a unique index
// rejecting an insert. Both supported drivers are covered: GORM's
// translated sentinel, the raw Postgres error code, and the SQLite
// message for drivers that predate error translation.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
