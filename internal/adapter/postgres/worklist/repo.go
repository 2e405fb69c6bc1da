// Package worklist stores work lists in PostgreSQL. Each list is a named set
// of rows in the work_rows table; the row position is the WorkRow ID.
package worklist

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sentencemine/internal/adapter/postgres"
	"github.com/heartmarshall/sentencemine/internal/domain"
)

const table = "work_rows"

var (
	builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	selectColumns = []string{"position", "term", "image", "sentence", "note_ids", "note_image", "error", "extra"}
	insertColumns = append([]string{"list_name"}, selectColumns...)
)

// Repo provides work-list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
	list string
	log  *slog.Logger
}

// New creates a repository for the list with the given name.
func New(pool *pgxpool.Pool, list string, logger *slog.Logger) *Repo {
	return &Repo{
		pool: pool,
		tx:   postgres.NewTxManager(pool),
		list: list,
		log:  logger.With("repo", "worklist_postgres", "list", list),
	}
}

// ReadAll returns every row of the list ordered by position.
func (r *Repo) ReadAll(ctx context.Context) ([]domain.WorkRow, error) {
	query, args, err := builder.
		Select(selectColumns...).
		From(table).
		Where(sq.Eq{"list_name": r.list}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "work_list", r.list)
	}
	defer rows.Close()

	var result []domain.WorkRow
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "work_list", r.list)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "work_list", r.list)
	}

	return result, nil
}

// UpdateOne rewrites the row at position row.ID.
func (r *Repo) UpdateOne(ctx context.Context, row domain.WorkRow) error {
	key := fmt.Sprintf("%s/%d", r.list, row.ID)

	query, args, err := builder.
		Update(table).
		Set("term", row.Term).
		Set("image", row.Image).
		Set("sentence", row.Sentence).
		Set("note_ids", noteIDs(row)).
		Set("note_image", row.NoteImage).
		Set("error", row.Error).
		Set("extra", extra(row)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"list_name": r.list, "position": row.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "work_row", key)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "work_row", key)
	}

	r.log.DebugContext(ctx, "row updated", slog.Int("position", row.ID), slog.String("error", row.Error))
	return nil
}

// WriteAll replaces the whole list in one transaction, streaming the new rows
// with COPY. Rows are stored at their slice index, so IDs are renumbered to
// 0..n-1.
func (r *Repo) WriteAll(ctx context.Context, rows []domain.WorkRow) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		query, args, err := builder.Delete(table).Where(sq.Eq{"list_name": r.list}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "work_list", r.list)
		}

		src := pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{r.list, i, row.Term, row.Image, row.Sentence,
				noteIDs(row), row.NoteImage, row.Error, extra(row)}, nil
		})
		if _, err := q.CopyFrom(ctx, pgx.Identifier{table}, insertColumns, src); err != nil {
			return postgres.MapError(err, "work_list", r.list)
		}

		r.log.InfoContext(ctx, "work list written", slog.Int("rows", len(rows)))
		return nil
	})
}

func scanRow(rows pgx.Rows) (domain.WorkRow, error) {
	var (
		row   domain.WorkRow
		ids   []int64
		extra map[string]string
	)
	if err := rows.Scan(&row.ID, &row.Term, &row.Image, &row.Sentence, &ids, &row.NoteImage, &row.Error, &extra); err != nil {
		return domain.WorkRow{}, err
	}
	if len(ids) > 0 {
		row.NoteIDs = ids
	}
	if len(extra) > 0 {
		row.Extra = extra
	}
	return row, nil
}

// noteIDs never returns nil; the column is NOT NULL.
func noteIDs(row domain.WorkRow) []int64 {
	if row.NoteIDs == nil {
		return []int64{}
	}
	return row.NoteIDs
}

func extra(row domain.WorkRow) map[string]string {
	if row.Extra == nil {
		return map[string]string{}
	}
	return row.Extra
}
