package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/sentencemine/internal/fallback"
)

// Enumerated settings.
const (
	BackendKagome  = "kagome"
	BackendSudachi = "sudachi"

	DriverCSV      = "csv"
	DriverPostgres = "postgres"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Corpus.validate(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}
	if err := c.Tokenizer.validate(); err != nil {
		return fmt.Errorf("tokenizer: %w", err)
	}
	if c.Anki.Version < 1 {
		return fmt.Errorf("anki.version must be >= 1 (got %d)", c.Anki.Version)
	}
	if err := c.Audio.validate(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	switch c.WorkList.Driver {
	case DriverCSV:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %s work-list driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("worklist.driver must be %s or %s (got %q)", DriverCSV, DriverPostgres, c.WorkList.Driver)
	}

	if c.LLM.SentencesPerTerm < 1 {
		return fmt.Errorf("llm.sentences_per_term must be > 0 (got %d)", c.LLM.SentencesPerTerm)
	}
	if c.Shuffle.Limit < 1 {
		return fmt.Errorf("shuffle.limit must be > 0 (got %d)", c.Shuffle.Limit)
	}

	return nil
}

func (c *CorpusConfig) validate() error {
	if len(c.Fields) != 3 {
		return fmt.Errorf("fields must list the kanji, english and audio positions (got %v)", c.Fields)
	}
	seen := make(map[int]bool, len(c.Fields))
	for _, v := range c.Fields {
		if v < 0 {
			return fmt.Errorf("fields must be >= 0 (got %v)", c.Fields)
		}
		if seen[v] {
			return fmt.Errorf("fields must be distinct (got %v)", c.Fields)
		}
		seen[v] = true
	}
	return nil
}

func (t *TokenizerConfig) validate() error {
	switch t.Backend {
	case BackendKagome:
		switch t.KagomeDict {
		case "ipa", "uni":
		default:
			return fmt.Errorf("kagome_dict must be ipa or uni (got %q)", t.KagomeDict)
		}
	case BackendSudachi:
		if strings.TrimSpace(t.SudachiBinary) == "" {
			return fmt.Errorf("sudachi_binary is required for the %s backend", BackendSudachi)
		}
	default:
		return fmt.Errorf("backend must be %s or %s (got %q)", BackendKagome, BackendSudachi, t.Backend)
	}
	if t.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", t.Workers)
	}
	return nil
}

func (a *AudioConfig) validate() error {
	if !a.JPod101Enabled() && len(a.Providers) == 0 {
		return fmt.Errorf("at least one audio provider must be configured")
	}
	for i, p := range a.Providers {
		if p.Name == "" {
			return fmt.Errorf("providers[%d].name is required", i)
		}
		if !strings.Contains(p.Template, "{term}") {
			return fmt.Errorf("providers[%d] (%s): template must contain {term}", i, p.Name)
		}
		for _, s := range p.Sentinels {
			if !fallback.IsDigest(s) {
				return fmt.Errorf("providers[%d] (%s): sentinel %q is not a sha256 hex digest", i, p.Name, s)
			}
		}
	}
	return nil
}
