package domain

// Candidate is a corpus sentence paired with the glossary entry of the term it
// was found for. A candidate is never built without a non-empty entry.
type Candidate struct {
	Sentence   Sentence
	Dictionary DictionaryEntry
}

// ScoredCandidate is a candidate ranked by the scorer.
type ScoredCandidate struct {
	Candidate Candidate
	Score     float64
}

// ClozeResult is a sentence with at most one cloze marker. Found is false when
// the term could not be located and Marked is the unmarked sentence.
type ClozeResult struct {
	Marked string
	Found  bool
}
