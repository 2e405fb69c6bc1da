// Package rtk loads Remembering-the-Kanji keywords and renders them for a word.
package rtk

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// JouyouLimit is the highest Heisig id kept; later frames are outside the jouyou set.
const JouyouLimit = 2200

// Keyword is one kanji row of the table.
type Keyword struct {
	Kanji         string
	HeisigID      int
	HeisigKeyword string
	JPDBKeyword   string
}

// Table maps a kanji to its keyword.
type Table struct {
	byKanji map[string]Keyword
}

// NewTable builds a Table; the first row per kanji wins.
func NewTable(keywords []Keyword) *Table {
	t := &Table{byKanji: make(map[string]Keyword, len(keywords))}
	for _, k := range keywords {
		if _, ok := t.byKanji[k.Kanji]; !ok {
			t.byKanji[k.Kanji] = k
		}
	}
	return t
}

// Len returns the number of kanji.
func (t *Table) Len() int { return len(t.byKanji) }

// Lookup returns the keyword row for one kanji.
func (t *Table) Lookup(kanji string) (Keyword, bool) {
	k, ok := t.byKanji[kanji]
	return k, ok
}

// For returns the keywords of the unique kanji of word in order of first appearance.
func (t *Table) For(word string) []Keyword {
	seen := make(map[rune]struct{})
	var out []Keyword
	for _, r := range word {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if k, ok := t.byKanji[string(r)]; ok {
			out = append(out, k)
		}
	}
	return out
}

// JoinedFor renders "漢: keyword, 字: keyword" for word.
func (t *Table) JoinedFor(word string) string {
	keywords := t.For(word)
	parts := make([]string, len(keywords))
	for i, k := range keywords {
		parts[i] = k.Kanji + ": " + k.HeisigKeyword
	}
	return strings.Join(parts, ", ")
}

// Load reads the keyword CSV at path, keeping rows with a Heisig id up to JouyouLimit.
func Load(path string, log *slog.Logger) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rtk keywords: %w", err)
	}
	defer f.Close()

	keywords, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse rtk keywords %s: %w", path, err)
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("rtk keywords %s: no rows", path)
	}

	t := NewTable(keywords)
	log.Info("rtk keywords loaded", slog.String("path", path), slog.Int("kanji", t.Len()))
	return t, nil
}

// Parse reads the header-driven CSV. Rows with a missing or non-numeric
// Heisig id, or one above JouyouLimit, are skipped.
func Parse(r io.Reader) ([]Keyword, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")] = i
	}
	for _, required := range []string{"kanji", "heisigId", "heisigKeyword"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var keywords []Keyword
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		id, err := strconv.Atoi(field(record, "heisigId"))
		if err != nil || id > JouyouLimit {
			continue
		}
		kanji := field(record, "kanji")
		if kanji == "" {
			continue
		}
		keywords = append(keywords, Keyword{
			Kanji:         kanji,
			HeisigID:      id,
			HeisigKeyword: field(record, "heisigKeyword"),
			JPDBKeyword:   field(record, "jpdbKeyword"),
		})
	}
	return keywords, nil
}
