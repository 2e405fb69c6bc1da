// Package yomitan loads Yomitan term banks as the glossary source.
package yomitan

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Dictionary is an in-memory glossary keyed by expression, with a secondary
// reading index. It is read-only after Load.
type Dictionary struct {
	entries   map[string]domain.DictionaryEntry
	byReading map[string]string
}

// NewDictionary builds a Dictionary from entries. The first entry for an
// expression wins; later ones only add readings.
func NewDictionary(entries []domain.DictionaryEntry) *Dictionary {
	d := &Dictionary{
		entries:   make(map[string]domain.DictionaryEntry, len(entries)),
		byReading: make(map[string]string),
	}
	for _, e := range entries {
		d.add(e)
	}
	return d
}

func (d *Dictionary) add(e domain.DictionaryEntry) {
	e.Expression = domain.NormalizeTerm(e.Expression)
	e.Reading = domain.NormalizeTerm(e.Reading)
	if e.Expression == "" {
		return
	}
	if _, ok := d.entries[e.Expression]; !ok {
		d.entries[e.Expression] = e
	}
	if e.Reading != "" {
		if _, ok := d.byReading[e.Reading]; !ok {
			d.byReading[e.Reading] = e.Expression
		}
	}
}

// Lookup finds term as an expression, then as a reading.
func (d *Dictionary) Lookup(term string) (domain.DictionaryEntry, bool) {
	term = domain.NormalizeTerm(term)
	if e, ok := d.entries[term]; ok {
		return e, true
	}
	if expr, ok := d.byReading[term]; ok {
		e, ok := d.entries[expr]
		return e, ok
	}
	return domain.DictionaryEntry{}, false
}

// Len returns the number of expressions.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Load reads every term bank matching pattern. No matching file is an error.
func Load(log *slog.Logger, pattern string) (*Dictionary, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glossary glob %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("glossary glob %q matched no files", pattern)
	}
	sort.Strings(files)

	d := NewDictionary(nil)
	for _, f := range files {
		entries, err := parseTermBank(f)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			d.add(e)
		}
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("glossary %q has no entries", pattern)
	}

	log.Info("glossary loaded", slog.Int("files", len(files)), slog.Int("entries", d.Len()))
	return d, nil
}

// parseTermBank reads one term_bank_*.json file. Rows are
// [expression, reading, defTags, rules, score, glossary[], sequence, termTags].
func parseTermBank(path string) ([]domain.DictionaryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read term bank: %w", err)
	}

	var rows [][]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse term bank %s: %w", path, err)
	}

	entries := make([]domain.DictionaryEntry, 0, len(rows))
	for i, row := range rows {
		e, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", filepath.Base(path), i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseRow(row []json.RawMessage) (domain.DictionaryEntry, error) {
	if len(row) < 6 {
		return domain.DictionaryEntry{}, fmt.Errorf("expected at least 6 columns, got %d", len(row))
	}

	var e domain.DictionaryEntry
	if err := json.Unmarshal(row[0], &e.Expression); err != nil {
		return e, fmt.Errorf("expression: %w", err)
	}
	if err := json.Unmarshal(row[1], &e.Reading); err != nil {
		return e, fmt.Errorf("reading: %w", err)
	}

	var glossary []json.RawMessage
	if err := json.Unmarshal(row[5], &glossary); err != nil {
		return e, fmt.Errorf("glossary: %w", err)
	}
	for _, item := range glossary {
		groups, err := decodeGlossaryItem(item)
		if err != nil {
			return e, fmt.Errorf("glossary item: %w", err)
		}
		for _, g := range groups {
			id := uuid.New()
			for _, text := range g {
				e.Meanings = append(e.Meanings, domain.Meaning{Text: domain.NormalizeTerm(text), GroupID: id})
			}
		}
	}
	return e, nil
}
