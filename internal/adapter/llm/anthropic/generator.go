// Package anthropic generates example sentences for cloze cards with Claude.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

const defaultMaxTokens = 2048

// Generator asks the Messages API for example sentences and parses the JSON answer.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewGenerator creates a Generator. Extra request options (base URL, retries)
// are passed to the SDK client.
func NewGenerator(apiKey, model string, logger *slog.Logger, opts ...option.RequestOption) *Generator {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Generator{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: defaultMaxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Generate returns up to n sentences using term plus the term's kana reading.
// An answer without usable sentences wraps domain.ErrNoSentences.
func (g *Generator) Generate(ctx context.Context, term string, n int) (domain.Generation, error) {
	if n < 1 {
		return domain.Generation{}, domain.NewValidationError("n", "must be positive")
	}

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(term, n))),
		},
	})
	if err != nil {
		return domain.Generation{}, fmt.Errorf("llm api call for %q: %w", term, err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return domain.Generation{}, fmt.Errorf("empty response for %q: %w", term, domain.ErrNoSentences)
	}

	gen, err := ParseGeneration(text.String(), n)
	if err != nil {
		return domain.Generation{}, fmt.Errorf("parse response for %q: %w", term, err)
	}

	g.log.DebugContext(ctx, "sentences generated",
		slog.String("term", term),
		slog.Int("count", len(gen.Sentences)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return gen, nil
}

// ParseGeneration extracts the JSON object from an answer, drops sentences
// without Japanese text and keeps at most n.
func ParseGeneration(answer string, n int) (domain.Generation, error) {
	jsonStr, err := extractJSON(answer)
	if err != nil {
		return domain.Generation{}, fmt.Errorf("%w: %w", domain.ErrNoSentences, err)
	}

	var gen domain.Generation
	if err := json.Unmarshal([]byte(jsonStr), &gen); err != nil {
		return domain.Generation{}, fmt.Errorf("%w: decode answer: %w", domain.ErrNoSentences, err)
	}

	kept := gen.Sentences[:0]
	for _, s := range gen.Sentences {
		s.Japanese = strings.TrimSpace(s.Japanese)
		if s.Japanese == "" {
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) > n {
		kept = kept[:n]
	}
	gen.Sentences = kept
	gen.TermReading = strings.TrimSpace(gen.TermReading)

	if len(gen.Sentences) == 0 {
		return domain.Generation{}, domain.ErrNoSentences
	}
	return gen, nil
}

func buildPrompt(term string, n int) string {
	return fmt.Sprintf(`Generate %d example sentences in Japanese for the word "%s".
The sentences should reflect the most common usages of the word, and include context
to help a non-native speaker understand the nuance. Use the word exactly as written.

Output ONLY a valid JSON object matching this exact schema:
{
  "sentences": [
    {
      "japanese": "<the Japanese text of the sentence>",
      "english": "<the English translation of the sentence>",
      "reading": "<the reading of the sentence in kana>",
      "english_context": "<a short English context for the sentence>"
    }
  ],
  "term_reading": "<the reading of the word in kana>",
  "term_english_context": "<a short English description of how the word is most used in general>"
}

Output ONLY the JSON, no markdown, no explanations`, n, term)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
