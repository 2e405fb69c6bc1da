package mining

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

func TestApplyOutcome_Success(t *testing.T) {
	t.Parallel()

	row := domain.WorkRow{ID: 4, Term: "条件", Error: "", Extra: map[string]string{"memo": "x"}}
	got := ApplyOutcome(row, Outcome{NoteID: 42, Sentence: "条件がある。"})

	assert.Equal(t, []int64{42}, got.NoteIDs)
	assert.Equal(t, "条件がある。", got.Sentence)
	assert.Empty(t, got.Error)
	assert.Equal(t, 4, got.ID)
	assert.Equal(t, "x", got.Extra["memo"])

	// the input row is untouched
	assert.Nil(t, row.NoteIDs)
	got.Extra["memo"] = "changed"
	assert.Equal(t, "x", row.Extra["memo"])
}

func TestApplyOutcome_Failure(t *testing.T) {
	t.Parallel()

	row := domain.WorkRow{ID: 1, Term: "条件", Sentence: "old"}
	got := ApplyOutcome(row, Outcome{Err: fmt.Errorf("search: %w", domain.ErrNoDictionaryEntry)})

	assert.Equal(t, domain.CodeNoDictionaryEntry, got.Error)
	assert.Equal(t, "old", got.Sentence)
	assert.False(t, got.HasNote())
}
