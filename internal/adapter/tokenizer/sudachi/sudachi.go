// Package sudachi is the out-of-process tokenizer backend. It runs the
// sudachi command line analyzer once per call.
package sudachi

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// DefaultBinary is the command looked up on PATH when none is configured.
const DefaultBinary = "sudachi"

// Tokenizer shells out to sudachi. Every call starts its own process, so a
// Tokenizer holds no shared handle and is safe for concurrent use.
type Tokenizer struct {
	binary string
	args   []string
}

// New returns a Tokenizer for binary. "-a" is added to args so the output
// carries the dictionary and reading columns.
func New(binary string, args ...string) *Tokenizer {
	if binary == "" {
		binary = DefaultBinary
	}
	full := append([]string(nil), args...)
	hasAll := false
	for _, a := range full {
		if a == "-a" || a == "--all" {
			hasAll = true
		}
	}
	if !hasAll {
		full = append(full, "-a")
	}
	return &Tokenizer{binary: binary, args: full}
}

// Tokenize implements the tokenizer port.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]domain.Token, error) {
	cmd := exec.CommandContext(ctx, t.binary, t.args...)
	cmd.Stdin = strings.NewReader(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("sudachi: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return Parse(stdout.Bytes())
}

// Parse reads sudachi's tab separated output: surface, comma joined part of
// speech, normalized form, dictionary form, reading, then optional columns.
// Each "EOS" line becomes a boundary token.
func Parse(out []byte) ([]domain.Token, error) {
	var tokens []domain.Token
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if line == "EOS" {
			tokens = append(tokens, domain.Token{PartOfSpeech: domain.POSBoundary})
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			return nil, fmt.Errorf("sudachi: line %d: expected tab separated columns, got %q", lineNo, line)
		}
		tok := domain.Token{Surface: cols[0]}
		pos, _, _ := strings.Cut(cols[1], ",")
		tok.PartOfSpeech = column(pos)
		if len(cols) > 2 {
			tok.NormalizedForm = column(cols[2])
		}
		if len(cols) > 3 {
			tok.DictionaryForm = column(cols[3])
		}
		if len(cols) > 4 {
			tok.Reading = column(cols[4])
		}
		tokens = append(tokens, tok)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sudachi: read output: %w", err)
	}
	return tokens, nil
}

func column(s string) string {
	s = strings.TrimSpace(s)
	if s == "*" {
		return ""
	}
	return s
}
