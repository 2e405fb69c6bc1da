package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Meaning is one gloss. Meanings that came from the same glossary node share
// a GroupID and are rendered on one numbered line.
type Meaning struct {
	Text    string
	GroupID uuid.UUID
}

// DictionaryEntry is the glossary for one headword.
type DictionaryEntry struct {
	Expression string
	Reading    string
	Meanings   []Meaning
}

// IsEmpty reports whether the entry has no meanings.
func (e DictionaryEntry) IsEmpty() bool {
	return len(e.Meanings) == 0
}

// RenderGlossary numbers meaning groups in first-seen order and joins them
// with <br>: "1.  a, b<br>2.  c".
func (e DictionaryEntry) RenderGlossary() string {
	var order []uuid.UUID
	groups := make(map[uuid.UUID][]string)
	for _, m := range e.Meanings {
		if _, ok := groups[m.GroupID]; !ok {
			order = append(order, m.GroupID)
		}
		groups[m.GroupID] = append(groups[m.GroupID], m.Text)
	}

	lines := make([]string, 0, len(order))
	for i, id := range order {
		lines = append(lines, fmt.Sprintf("%d.  %s", i+1, strings.Join(groups[id], ", ")))
	}
	return strings.Join(lines, "<br>")
}
