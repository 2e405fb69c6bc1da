package domain

import "sort"

// WordSet is a set of lemma strings.
type WordSet map[string]struct{}

// NewWordSet builds a set from words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts w. Empty strings are ignored.
func (s WordSet) Add(w string) {
	if w == "" {
		return
	}
	s[w] = struct{}{}
}

// Has reports whether w is in the set.
func (s WordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Merge adds every element of other.
func (s WordSet) Merge(other WordSet) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// IntersectionSize counts elements present in both sets.
func (s WordSet) IntersectionSize(other WordSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for w := range small {
		if large.Has(w) {
			n++
		}
	}
	return n
}

// Difference returns the elements of s that are not in other.
func (s WordSet) Difference(other WordSet) WordSet {
	out := make(WordSet)
	for w := range s {
		if !other.Has(w) {
			out[w] = struct{}{}
		}
	}
	return out
}

// Sorted returns the elements in lexical order.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
