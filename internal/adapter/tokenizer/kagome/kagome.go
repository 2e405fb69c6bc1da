// Package kagome is the in-process tokenizer backend built on kagome v2.
package kagome

import (
	"context"
	"fmt"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Dictionary names accepted by New.
const (
	DictIPA = "ipa"
	DictUni = "uni"
)

// Tokenizer analyzes text with kagome. It is safe for concurrent use.
type Tokenizer struct {
	kg *tokenizer.Tokenizer
}

// New loads the named system dictionary and returns a Tokenizer.
func New(dictName string) (*Tokenizer, error) {
	var d *dict.Dict
	switch dictName {
	case DictIPA, "":
		d = ipa.Dict()
	case DictUni:
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("kagome: unknown dictionary %q", dictName)
	}

	kg, err := tokenizer.New(d)
	if err != nil {
		return nil, fmt.Errorf("kagome: init tokenizer: %w", err)
	}
	return &Tokenizer{kg: kg}, nil
}

// Tokenize implements the tokenizer port. Boundary markers are kept as
// tokens with an empty surface.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ktoks := t.kg.Analyze(text, tokenizer.Normal)
	return convert(ktoks), nil
}

func convert(ktoks []tokenizer.Token) []domain.Token {
	out := make([]domain.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			out = append(out, domain.Token{PartOfSpeech: domain.POSBoundary})
			continue
		}

		tok := domain.Token{Surface: kt.Surface}
		if pos := kt.POS(); len(pos) > 0 {
			tok.PartOfSpeech = feature(pos[0])
		}
		if base, ok := kt.BaseForm(); ok {
			tok.DictionaryForm = feature(base)
		}
		if reading, ok := kt.Reading(); ok {
			tok.Reading = feature(reading)
		}
		out = append(out, tok)
	}
	return out
}

// feature maps the dictionaries' "*" placeholder to absent.
func feature(s string) string {
	if s == "*" {
		return ""
	}
	return s
}
