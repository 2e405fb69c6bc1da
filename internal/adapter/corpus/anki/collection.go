package anki

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)

// Collection file names, newest format first.
const (
	fileAnki21b = "collection.anki21b"
	fileAnki21  = "collection.anki21"
	fileAnki2   = "collection.anki2"
)

const fieldSeparator = "\x1f"

// readNotes returns the split fields of every note in the collection found in
// folder, ordered by note id.
func readNotes(ctx context.Context, folder string) ([][]string, error) {
	dbPath, cleanup, err := collectionPath(folder)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open collection: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT flds FROM notes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var notes [][]string
	for rows.Next() {
		var flds string
		if err := rows.Scan(&flds); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, strings.Split(flds, fieldSeparator))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// collectionPath finds the collection database. A compressed anki21b
// collection is decompressed into a temporary file removed by cleanup.
func collectionPath(folder string) (path string, cleanup func(), err error) {
	noop := func() {}

	compressed := filepath.Join(folder, fileAnki21b)
	if _, err := os.Stat(compressed); err == nil {
		tmp, err := decompressToTemp(compressed)
		if err != nil {
			return "", noop, err
		}
		return tmp, func() { os.Remove(tmp) }, nil
	}

	for _, name := range []string{fileAnki21, fileAnki2} {
		p := filepath.Join(folder, name)
		if _, err := os.Stat(p); err == nil {
			return p, noop, nil
		}
	}
	return "", noop, fmt.Errorf("no collection file in %s: %w", folder, os.ErrNotExist)
}

func decompressToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	dec, err := zstd.NewReader(src)
	if err != nil {
		return "", fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	tmp, err := os.CreateTemp("", "collection-*.sqlite")
	if err != nil {
		return "", fmt.Errorf("create temp collection: %w", err)
	}
	if _, err := io.Copy(tmp, dec); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("decompress %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp collection: %w", err)
	}
	return tmp.Name(), nil
}
