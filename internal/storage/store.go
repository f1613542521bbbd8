package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ConflictError reports a uniqueness-constraint violation with the
// database-supplied detail, surfaced to callers as 409.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Detail)
}

const pgUniqueViolation = "23505"

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		detail := pgErr.Detail
		if detail == "" {
			detail = pgErr.Message
		}
		return &ConflictError{Detail: detail}
	}
	return err
}

// paginate applies 1-indexed pagination: offset = (pageNum - 1) * pageSize.
func paginate(pageSize, pageNum int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((pageNum - 1) * pageSize).Limit(pageSize)
	}
}
