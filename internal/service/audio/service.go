// Package audio acquires pronunciation audio for a term through the provider
// fallback chain and keeps a copy in the audio directory.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/sentencemine/internal/domain"
	"github.com/heartmarshall/sentencemine/internal/fallback"
)

//go:generate moq -out resolver_mock_test.go -pkg audio . resolver

type resolver interface {
	Resolve(ctx context.Context, term, reading string) (fallback.Result, error)
}

// Clip is downloaded term audio.
type Clip struct {
	Source   string
	Filename string
	Path     string
	Data     []byte
}

// Service resolves and stores term audio.
type Service struct {
	log      *slog.Logger
	resolver resolver
	dir      string
}

// NewService creates a Service writing into dir.
func NewService(log *slog.Logger, r resolver, dir string) *Service {
	return &Service{
		log:      log.With("service", "audio"),
		resolver: r,
		dir:      dir,
	}
}

// Acquire resolves audio for (term, reading) and writes it to <dir>/<term>.mp3.
// When every provider fails the error wraps domain.ErrNoAudioAvailable.
func (s *Service) Acquire(ctx context.Context, term, reading string) (Clip, error) {
	res, err := s.resolver.Resolve(ctx, term, reading)
	if err != nil {
		if errors.Is(err, fallback.ErrExhausted) {
			return Clip{}, fmt.Errorf("audio for %q (%s): %w", term, reading, domain.ErrNoAudioAvailable)
		}
		return Clip{}, fmt.Errorf("resolve audio for %q: %w", term, err)
	}

	clip := Clip{
		Source:   res.Source,
		Filename: FileName(term),
		Data:     res.Data,
	}
	clip.Path = filepath.Join(s.dir, clip.Filename)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Clip{}, fmt.Errorf("create audio dir: %w", err)
	}
	if err := os.WriteFile(clip.Path, res.Data, 0o644); err != nil {
		return Clip{}, fmt.Errorf("write audio for %q: %w", term, err)
	}

	s.log.InfoContext(ctx, "audio saved",
		slog.String("term", term),
		slog.String("source", res.Source),
		slog.String("path", clip.Path),
	)
	return clip, nil
}

var unsafeName = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "\x00", "")

// FileName returns the stored audio file name for term.
func FileName(term string) string {
	return unsafeName.Replace(term) + ".mp3"
}
