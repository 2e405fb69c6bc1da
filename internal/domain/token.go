package domain

// Top-level part-of-speech tags shared by both tokenizer backends.
const (
	POSParticle  = "助詞"
	POSSymbol    = "記号"
	POSAuxSymbol = "補助記号" // unidic/sudachi name for punctuation
	POSBoundary  = "BOS/EOS"
)

// Token is one morphological unit produced by a tokenizer backend.
// Empty string means the analyzer did not provide the value.
type Token struct {
	Surface        string
	PartOfSpeech   string
	NormalizedForm string
	DictionaryForm string
	Reading        string
}

// IsBoundary reports whether the token is a sentence boundary marker.
func (t Token) IsBoundary() bool {
	return t.PartOfSpeech == POSBoundary
}

// IsContent reports whether the token carries vocabulary: it is not a
// particle, a symbol, or a boundary marker, and it has a part of speech.
func (t Token) IsContent() bool {
	switch t.PartOfSpeech {
	case "", POSParticle, POSSymbol, POSAuxSymbol, POSBoundary:
		return false
	}
	return true
}

// Lemma returns the dictionary form, falling back to the surface form.
func (t Token) Lemma() string {
	if t.DictionaryForm != "" {
		return t.DictionaryForm
	}
	return t.Surface
}

// Normal returns the normalized form, falling back to the dictionary form and
// then to the surface form.
func (t Token) Normal() string {
	if t.NormalizedForm != "" {
		return t.NormalizedForm
	}
	return t.Lemma()
}

// ContentWords returns the lemmas of all content tokens, in order, with
// duplicates kept.
func ContentWords(tokens []Token) []string {
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsContent() {
			continue
		}
		if w := t.Lemma(); w != "" {
			words = append(words, w)
		}
	}
	return words
}
