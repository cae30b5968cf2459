package errs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrDatabaseQuery        = errors.New("database query failed")
	ErrDatabaseConnection   = errors.New("database connection failed")
	ErrForeignKeyConstraint = errors.New("foreign key constraint violation")
)

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(step, operation, entity string, cause error) *SeedErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)

	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		return &SeedErr{
			Kind:    KindCanceled,
			Step:    step,
			err:     ErrCanceled,
			Details: details,
			Cause:   cause,
		}
	}

	// Check for common driver messages and provide more specific errors
	if cause != nil {
		errStr := strings.ToLower(cause.Error())
		switch {
		case strings.Contains(errStr, "duplicate key"), strings.Contains(errStr, "unique constraint"):
			return &SeedErr{
				Kind:    KindConflict,
				Step:    step,
				err:     fmt.Errorf("%s %w", entity, ErrAlreadyExists),
				Details: details,
				Cause:   cause,
			}
		case strings.Contains(errStr, "foreign key constraint"):
			return &SeedErr{
				Kind:    KindReference,
				Step:    step,
				err:     ErrForeignKeyConstraint,
				Details: fmt.Sprintf("invalid reference in %s", entity),
				Cause:   cause,
			}
		case strings.Contains(errStr, "record not found"):
			return &SeedErr{
				Kind:    KindDatabase,
				Step:    step,
				err:     fmt.Errorf("%s %w", entity, ErrNotFound),
				Details: details,
				Cause:   cause,
			}
		case strings.Contains(errStr, "connection"), strings.Contains(errStr, "failed to connect"):
			return &SeedErr{
				Kind:    KindConnection,
				Step:    step,
				err:     ErrDatabaseConnection,
				Details: "unable to reach the database",
				Cause:   cause,
			}
		}
	}

	// Generic database error
	return &SeedErr{
		Kind:    KindDatabase,
		Step:    step,
		err:     ErrDatabaseQuery,
		Details: details,
		Cause:   cause,
	}
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConnectionError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}

func IsForeignKeyConstraintError(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}
