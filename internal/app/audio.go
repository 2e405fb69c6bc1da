package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sentencemine/internal/adapter/provider/jpod101"
	"github.com/heartmarshall/sentencemine/internal/adapter/provider/urltemplate"
	"github.com/heartmarshall/sentencemine/internal/config"
	"github.com/heartmarshall/sentencemine/internal/fallback"
	"github.com/heartmarshall/sentencemine/internal/service/audio"
)

// AudioSources builds the provider chain in priority order.
func AudioSources(cfg config.AudioConfig, logger *slog.Logger) ([]fallback.Source, error) {
	var sources []fallback.Source
	if cfg.JPod101Enabled() {
		sources = append(sources, jpod101.NewProvider(logger, cfg.Timeout).Source())
	}
	for _, p := range cfg.Providers {
		provider, err := urltemplate.NewProvider(p.Name, p.Template, p.Sentinels, logger, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		sources = append(sources, provider.Source())
	}
	return sources, nil
}

// NewAudioService creates the term audio service writing into the
// configured audio directory.
func NewAudioService(cfg *config.Config, logger *slog.Logger) (*audio.Service, error) {
	sources, err := AudioSources(cfg.Audio, logger)
	if err != nil {
		return nil, err
	}
	resolver, err := fallback.NewResolver(logger, sources...)
	if err != nil {
		return nil, fmt.Errorf("audio providers: %w", err)
	}
	return audio.NewService(logger, resolver, cfg.Data.AudioDir), nil
}
