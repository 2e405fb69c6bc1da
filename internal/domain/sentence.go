package domain

// Sentence is one corpus record. Position is assigned once at load time and
// is the identity the dictform index refers to.
type Sentence struct {
	Position int
	Kanji    string
	English  string
	// AudioFiles are media filenames resolved through the corpus media map.
	AudioFiles []string
	// MissingAudio counts [sound:] references that did not resolve.
	MissingAudio int
}

// HasAudio reports whether at least one audio file resolved.
func (s Sentence) HasAudio() bool {
	return len(s.AudioFiles) > 0
}

// Complete reports whether the record has text, a gloss, and every audio
// reference resolved.
func (s Sentence) Complete() bool {
	return s.Kanji != "" && s.English != "" && s.HasAudio() && s.MissingAudio == 0
}

// Corpus is the ordered, read-only sentence collection plus its media
// directory.
type Corpus struct {
	Sentences []Sentence
	// MediaDir is the folder holding the files named in AudioFiles.
	MediaDir string
}

// Len returns the number of sentences.
func (c *Corpus) Len() int {
	return len(c.Sentences)
}

// At returns the sentence at position pos.
func (c *Corpus) At(pos int) (Sentence, bool) {
	if pos < 0 || pos >= len(c.Sentences) {
		return Sentence{}, false
	}
	return c.Sentences[pos], true
}
