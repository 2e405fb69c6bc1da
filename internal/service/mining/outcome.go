package mining

import "github.com/heartmarshall/sentencemine/internal/domain"

// Outcome is the result of processing one work row.
type Outcome struct {
	NoteID   int64
	Sentence string
	Err      error
}

// ApplyOutcome returns a copy of row updated with out. A failed outcome only
// records the error code; a successful one stores the note id and sentence
// and clears the error.
func ApplyOutcome(row domain.WorkRow, out Outcome) domain.WorkRow {
	next := row.Clone()
	if out.Err != nil {
		next.Error = domain.ErrorCode(out.Err)
		return next
	}
	next.NoteIDs = []int64{out.NoteID}
	next.Sentence = out.Sentence
	next.Error = ""
	return next
}
