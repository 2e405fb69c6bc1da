package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// constraintErrors maps SQLSTATE codes to domain errors.
var constraintErrors = map[string]error{
	"23502": domain.ErrValidation,    // not_null_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23514": domain.ErrValidation,    // check_violation
}

// MapError wraps err with the entity and key it concerns, translating
// no-rows and constraint violations into domain errors. Context errors and
// unknown driver errors keep their original chain.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %v: %w", entity, key, classify(err))
}

func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := constraintErrors[pgErr.Code]; ok {
			return mapped
		}
	}
	return err
}
