package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"gorm.io/gorm"
)

const pgForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return true
	}
	// sqlite builds without the error translator only report the message
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// translateDeleteError maps a foreign key violation on delete to
// apperror.ErrHasDependents.
func translateDeleteError(err error) error {
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return apperror.ErrHasDependents
	}
	return err
}

// translateWriteError maps constraint violations raised by inserts and updates.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return apperror.NewBadRequestError("Referenced record does not exist")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("Record already exists")
	}
	return err
}
