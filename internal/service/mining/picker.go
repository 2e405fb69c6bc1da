package mining

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Picker chooses one of the listed candidates for a term. Declining returns
// domain.ErrUserSkipped.
type Picker interface {
	Pick(ctx context.Context, term string, candidates []domain.Candidate) (int, error)
}

// FirstPicker always takes the first candidate.
type FirstPicker struct{}

// Pick returns 0.
func (FirstPicker) Pick(_ context.Context, _ string, candidates []domain.Candidate) (int, error) {
	if len(candidates) == 0 {
		return 0, domain.ErrNoMatchFound
	}
	return 0, nil
}

const prompt = "Pick which to add ('n' to skip): "

// StdinPicker lists candidates on Out and reads the chosen index from In.
type StdinPicker struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewStdinPicker creates a StdinPicker.
func NewStdinPicker(in io.Reader, out io.Writer) *StdinPicker {
	return &StdinPicker{in: bufio.NewScanner(in), out: out}
}

// Pick prints "i: sentence -- english" per candidate and prompts until it
// reads a valid index or "n". End of input counts as a skip.
func (p *StdinPicker) Pick(ctx context.Context, term string, candidates []domain.Candidate) (int, error) {
	fmt.Fprintf(p.out, "%s:\n", term)
	for i, c := range candidates {
		fmt.Fprintf(p.out, "%d: %s -- %s\n", i, c.Sentence.Kanji, c.Sentence.English)
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprint(p.out, prompt)

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("read choice: %w", err)
			}
			return 0, domain.ErrUserSkipped
		}

		line := strings.TrimSpace(p.in.Text())
		if line == "n" {
			return 0, domain.ErrUserSkipped
		}
		i, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "%q is not a number\n", line)
			continue
		}
		if i < 0 || i >= len(candidates) {
			fmt.Fprintf(p.out, "%d is out of range\n", i)
			continue
		}
		return i, nil
	}
}
