package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueList returns a list name that no other test uses.
func UniqueList(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedTerms inserts one bare row per term into list, at positions 0..n-1.
func SeedTerms(t *testing.T, pool *pgxpool.Pool, list string, terms ...string) {
	t.Helper()
	ctx := context.Background()

	for i, term := range terms {
		_, err := pool.Exec(ctx,
			`INSERT INTO work_rows (list_name, position, term) VALUES ($1, $2, $3)`,
			list, i, term,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedTerms insert %q: %v", term, err)
		}
	}
}
