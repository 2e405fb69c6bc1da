// Package csvfile stores a work list as a CSV spreadsheet with a header row.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Column headers understood by the repository.
const (
	ColTerm      = "漢字"
	ColImage     = "絵"
	ColSentence  = "例文"
	ColNoteID    = "ノートID"
	ColNoteIDs   = "ノートID集合"
	ColNoteImage = "NoteImage"
	ColError     = "Error"
)

var defaultHeader = []string{ColTerm, ColImage, ColSentence, ColNoteID, ColNoteImage, ColError}

// Repository reads and writes one CSV file. Writes replace the file
// atomically. Methods are serialized.
type Repository struct {
	path string
	log  *slog.Logger

	mu     sync.Mutex
	header []string
}

// NewRepository creates a Repository for path.
func NewRepository(path string, logger *slog.Logger) *Repository {
	return &Repository{path: path, log: logger.With("repo", "worklist_csv", "path", path)}
}

// ReadAll returns every row. Row ids are 0-based data row positions.
func (r *Repository) ReadAll(ctx context.Context) ([]domain.WorkRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll(ctx)
}

// UpdateOne rewrites the row with the same ID.
func (r *Repository) UpdateOne(ctx context.Context, row domain.WorkRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	if row.ID < 0 || row.ID >= len(rows) {
		return fmt.Errorf("update row %d: %w", row.ID, domain.ErrNotFound)
	}
	rows[row.ID] = row
	return r.writeAll(rows)
}

// WriteAll replaces the whole file.
func (r *Repository) WriteAll(ctx context.Context, rows []domain.WorkRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.header == nil {
		if _, err := r.readAll(ctx); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return r.writeAll(rows)
}

func (r *Repository) readAll(ctx context.Context) ([]domain.WorkRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open work list: %w", err)
	}
	defer f.Close()

	rows, header, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("read work list %s: %w", r.path, err)
	}
	r.header = header
	return rows, nil
}

func (r *Repository) writeAll(rows []domain.WorkRow) error {
	header := r.header
	if header == nil {
		header = defaultHeader
	}
	header = withExtraColumns(header, rows)

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp, header, rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write work list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close work list: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace work list: %w", err)
	}
	r.header = header
	r.log.Debug("work list written", slog.Int("rows", len(rows)))
	return nil
}

func decode(rd io.Reader) ([]domain.WorkRow, []string, error) {
	reader := csv.NewReader(rd)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if indexOf(header, ColTerm) < 0 {
		return nil, nil, fmt.Errorf("header has no %s column", ColTerm)
	}

	var rows []domain.WorkRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		row, err := toRow(len(rows), header, record)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}

func toRow(id int, header, record []string) (domain.WorkRow, error) {
	row := domain.WorkRow{ID: id}
	for i, col := range header {
		var v string
		if i < len(record) {
			v = record[i]
		}
		switch col {
		case ColTerm:
			row.Term = domain.NormalizeTerm(v)
		case ColImage:
			row.Image = strings.TrimSpace(v)
		case ColSentence:
			row.Sentence = v
		case ColNoteID, ColNoteIDs:
			ids, err := parseNoteIDs(v)
			if err != nil {
				return row, fmt.Errorf("row %d: %w", id+1, err)
			}
			row.NoteIDs = ids
		case ColNoteImage:
			row.NoteImage = v
		case ColError:
			row.Error = strings.TrimSpace(v)
		default:
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[col] = v
		}
	}
	return row, nil
}

func parseNoteIDs(v string) ([]int64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	parts := strings.Split(v, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, domain.NewValidationError(ColNoteID, fmt.Sprintf("%q is not a note id", p))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func formatNoteIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func encode(w io.Writer, header []string, rows []domain.WorkRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			switch col {
			case ColTerm:
				record[i] = row.Term
			case ColImage:
				record[i] = row.Image
			case ColSentence:
				record[i] = row.Sentence
			case ColNoteID, ColNoteIDs:
				record[i] = formatNoteIDs(row.NoteIDs)
			case ColNoteImage:
				record[i] = row.NoteImage
			case ColError:
				record[i] = row.Error
			default:
				record[i] = row.Extra[col]
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// withExtraColumns appends Extra keys missing from header, in first-seen
// order, so no data is dropped on write.
func withExtraColumns(header []string, rows []domain.WorkRow) []string {
	out := append([]string(nil), header...)
	for _, row := range rows {
		keys := make([]string, 0, len(row.Extra))
		for k := range row.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if indexOf(out, k) < 0 {
				out = append(out, k)
			}
		}
	}
	return out
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
