// Package dictform builds and persists the inverted index from dictionary
// form to corpus sentence positions.
package dictform

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Index maps a lemma to the positions of the sentences containing it.
// Positions under a key are unique and kept in insertion order.
type Index struct {
	postings map[string][]int
	seen     map[string]map[int]struct{}
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		postings: make(map[string][]int),
		seen:     make(map[string]map[int]struct{}),
	}
}

// Add records pos under key. Adding an existing (key, pos) pair is a no-op.
func (x *Index) Add(key string, pos int) {
	if key == "" {
		return
	}
	set, ok := x.seen[key]
	if !ok {
		set = make(map[int]struct{})
		x.seen[key] = set
	}
	if _, dup := set[pos]; dup {
		return
	}
	set[pos] = struct{}{}
	x.postings[key] = append(x.postings[key], pos)
}

// Lookup returns the positions stored under key.
func (x *Index) Lookup(key string) ([]int, bool) {
	p, ok := x.postings[key]
	if !ok {
		return nil, false
	}
	return append([]int(nil), p...), true
}

// Len returns the number of keys.
func (x *Index) Len() int {
	return len(x.postings)
}

// Keys returns all keys in lexical order.
func (x *Index) Keys() []string {
	keys := make([]string, 0, len(x.postings))
	for k := range x.postings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the index against the corpus it was built from. It fails
// when the index is empty or refers to a position outside [0, corpusSize).
func (x *Index) Validate(corpusSize int) error {
	if len(x.postings) == 0 {
		return fmt.Errorf("dictform index is empty")
	}
	for key, p := range x.postings {
		if len(p) == 0 {
			return fmt.Errorf("dictform index: key %q has no positions", key)
		}
		for _, pos := range p {
			if pos < 0 || pos >= corpusSize {
				return fmt.Errorf("dictform index: key %q refers to position %d, corpus has %d sentences", key, pos, corpusSize)
			}
		}
	}
	return nil
}

// MarshalJSON writes the index as a flat object of key to position list.
func (x *Index) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.postings)
}

// UnmarshalJSON reads the flat object form. Duplicate positions under a key
// are collapsed.
func (x *Index) UnmarshalJSON(data []byte) error {
	var raw map[string][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	x.postings = make(map[string][]int, len(raw))
	x.seen = make(map[string]map[int]struct{}, len(raw))
	for key, p := range raw {
		for _, pos := range p {
			x.Add(key, pos)
		}
	}
	return nil
}
