package app

import (
	"fmt"

	"github.com/heartmarshall/sentencemine/internal/adapter/tokenizer/kagome"
	"github.com/heartmarshall/sentencemine/internal/adapter/tokenizer/sudachi"
	"github.com/heartmarshall/sentencemine/internal/config"
	"github.com/heartmarshall/sentencemine/internal/dictform"
)

// TokenizerFactory returns a factory for the configured backend. Each call
// yields an independent handle.
func TokenizerFactory(cfg config.TokenizerConfig) (dictform.TokenizerFactory, error) {
	switch cfg.Backend {
	case config.BackendKagome:
		return func() (dictform.Tokenizer, error) {
			tok, err := kagome.New(cfg.KagomeDict)
			if err != nil {
				return nil, err
			}
			return tok, nil
		}, nil
	case config.BackendSudachi:
		return func() (dictform.Tokenizer, error) {
			return sudachi.New(cfg.SudachiBinary, cfg.SudachiArgs...), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer backend %q", cfg.Backend)
	}
}

// NewTokenizer creates one handle of the configured backend.
func NewTokenizer(cfg config.TokenizerConfig) (dictform.Tokenizer, error) {
	factory, err := TokenizerFactory(cfg)
	if err != nil {
		return nil, err
	}
	return factory()
}
