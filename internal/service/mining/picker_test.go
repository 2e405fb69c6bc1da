package mining

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

func pickerCandidates() []domain.Candidate {
	return []domain.Candidate{
		candidate(0, "条件がある。", "There is a condition."),
		candidate(1, "条件を満たす。", "Meet the requirements."),
	}
}

func TestStdinPicker_Pick(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{"valid index", "1\n", 1, nil},
		{"retries after garbage", "abc\n7\n0\n", 0, nil},
		{"skip", "n\n", 0, domain.ErrUserSkipped},
		{"end of input", "", 0, domain.ErrUserSkipped},
		{"trims whitespace", "  1  \n", 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := NewStdinPicker(strings.NewReader(tt.input), &out)
			got, err := p.Pick(context.Background(), "条件", pickerCandidates())

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Pick() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Pick() = %d, want %d", got, tt.want)
			}
			if !strings.Contains(out.String(), "1: 条件を満たす。 -- Meet the requirements.") {
				t.Errorf("listing missing from output:\n%s", out.String())
			}
		})
	}
}

func TestStdinPicker_ReportsBadInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewStdinPicker(strings.NewReader("abc\n9\n1\n"), &out)
	if _, err := p.Pick(context.Background(), "条件", pickerCandidates()); err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if !strings.Contains(out.String(), `"abc" is not a number`) {
		t.Errorf("output should reject abc:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "9 is out of range") {
		t.Errorf("output should reject 9:\n%s", out.String())
	}
	if got := strings.Count(out.String(), prompt); got != 3 {
		t.Errorf("prompt shown %d times, want 3", got)
	}
}

func TestFirstPicker(t *testing.T) {
	t.Parallel()

	got, err := FirstPicker{}.Pick(context.Background(), "条件", pickerCandidates())
	if err != nil || got != 0 {
		t.Errorf("Pick() = %d, %v; want 0, nil", got, err)
	}
	if _, err := (FirstPicker{}).Pick(context.Background(), "条件", nil); !errors.Is(err, domain.ErrNoMatchFound) {
		t.Errorf("Pick(nil) error = %v, want ErrNoMatchFound", err)
	}
}
