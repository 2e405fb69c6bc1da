package domain

// WorkRow is one row of a persisted work list. The mining list and the cloze
// list share the shape; the cloze list stores several note ids per row.
type WorkRow struct {
	// ID is the row's stable position within its list.
	ID        int
	Term      string
	Image     string
	Sentence  string
	NoteIDs   []int64
	NoteImage string
	Error     string
	// Extra holds columns the tool does not interpret, keyed by header.
	Extra map[string]string
}

// HasNote reports whether the row already produced at least one note.
func (r WorkRow) HasNote() bool {
	return len(r.NoteIDs) > 0
}

// Pending reports whether the row still needs processing.
func (r WorkRow) Pending() bool {
	return r.Term != "" && r.Error == "" && !r.HasNote()
}

// NeedsImage reports whether the row's note exists and its picture is stale.
func (r WorkRow) NeedsImage() bool {
	return r.HasNote() && r.Image != "" && r.NoteImage != r.Image
}

// Clone returns a deep copy so run functions never mutate their input.
func (r WorkRow) Clone() WorkRow {
	out := r
	if r.NoteIDs != nil {
		out.NoteIDs = append([]int64(nil), r.NoteIDs...)
	}
	if r.Extra != nil {
		out.Extra = make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
