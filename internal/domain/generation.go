package domain

// GeneratedSentence is one example sentence produced for a term.
type GeneratedSentence struct {
	Japanese       string `json:"japanese"`
	English        string `json:"english"`
	Reading        string `json:"reading"`
	EnglishContext string `json:"english_context"`
}

// Generation is the sentence generator's answer for one term.
type Generation struct {
	Sentences          []GeneratedSentence `json:"sentences"`
	TermReading        string              `json:"term_reading"`
	TermEnglishContext string              `json:"term_english_context"`
}
