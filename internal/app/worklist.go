package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sentencemine/internal/adapter/postgres"
	pgworklist "github.com/heartmarshall/sentencemine/internal/adapter/postgres/worklist"
	"github.com/heartmarshall/sentencemine/internal/adapter/worklist/csvfile"
	"github.com/heartmarshall/sentencemine/internal/config"
	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Work list names. They are the list key in the postgres driver.
const (
	ListMining = "mining"
	ListCloze  = "cloze"
)

// WorkList is a persisted work list.
type WorkList interface {
	ReadAll(ctx context.Context) ([]domain.WorkRow, error)
	UpdateOne(ctx context.Context, row domain.WorkRow) error
	WriteAll(ctx context.Context, rows []domain.WorkRow) error
}

// Compile-time interface assertions.
var (
	_ WorkList = (*csvfile.Repository)(nil)
	_ WorkList = (*pgworklist.Repo)(nil)
)

// OpenWorkList opens the named list with the configured driver. The returned
// close function releases the database pool and is never nil.
func OpenWorkList(ctx context.Context, cfg *config.Config, name string, logger *slog.Logger) (WorkList, func(), error) {
	switch cfg.WorkList.Driver {
	case config.DriverCSV:
		path, err := csvPath(cfg.WorkList, name)
		if err != nil {
			return nil, func() {}, err
		}
		return csvfile.NewRepository(path, logger), func() {}, nil

	case config.DriverPostgres:
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, func() {}, err
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, func() {}, err
		}
		return pgworklist.New(pool, name, logger), pool.Close, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown work-list driver %q", cfg.WorkList.Driver)
	}
}

// openWorkList is replaced in tests.
var openWorkList = OpenWorkList

// RunWithWorkList opens the named list, fills it from its CSV file when
// importCSV is set and calls fn with it. The list is closed before
// RunWithWorkList returns, whatever fn returns.
func RunWithWorkList(ctx context.Context, cfg *config.Config, name string, importCSV bool, logger *slog.Logger,
	fn func(ctx context.Context, list WorkList) error,
) error {
	list, closeList, err := openWorkList(ctx, cfg, name, logger)
	if err != nil {
		closeList()
		return fmt.Errorf("open work list: %w", err)
	}
	defer closeList()

	if importCSV {
		n, err := ImportCSV(ctx, cfg, name, list, logger)
		if err != nil {
			return err
		}
		logger.Info("work list imported", slog.String("list", name), slog.Int("rows", n))
	}

	return fn(ctx, list)
}

// ImportCSV replaces the rows of dst with the rows of the list's CSV file.
// It is how a postgres-backed list is first filled.
func ImportCSV(ctx context.Context, cfg *config.Config, name string, dst WorkList, logger *slog.Logger) (int, error) {
	path, err := csvPath(cfg.WorkList, name)
	if err != nil {
		return 0, err
	}
	rows, err := csvfile.NewRepository(path, logger).ReadAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := dst.WriteAll(ctx, rows); err != nil {
		return 0, fmt.Errorf("import %s: %w", path, err)
	}
	return len(rows), nil
}

func csvPath(cfg config.WorkListConfig, name string) (string, error) {
	switch name {
	case ListMining:
		return cfg.MiningCSV, nil
	case ListCloze:
		return cfg.ClozeCSV, nil
	default:
		return "", fmt.Errorf("unknown work list %q", name)
	}
}
