// Package jpod101 fetches word pronunciations from the JapanesePod101 audio
// archive.
package jpod101

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/sentencemine/internal/domain"
	"github.com/heartmarshall/sentencemine/internal/fallback"
)

const (
	defaultBaseURL = "https://assets.languagepod101.com/dictionary/japanese/audiomp3.php"
	defaultTimeout = 10 * time.Second

	// Name identifies the provider in logs and configuration.
	Name = "jpod101"

	// InvalidAudioDigest is the sha256 of the clip served when the archive
	// has no recording ("the audio for this clip is currently not available").
	InvalidAudioDigest = "ae6398b5a27bc8c0a771df6c907ade794be15518174773c58c7c7ddd17098906"
)

// Provider downloads mp3 clips.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default archive URL.
// timeout <= 0 uses a 10s default.
func NewProvider(logger *slog.Logger, timeout time.Duration) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger, timeout)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", Name),
	}
}

// Source wraps the provider for the fallback resolver.
func (p *Provider) Source() fallback.Source {
	return fallback.Source{Name: Name, Fetch: p.Fetch, Sentinels: []string{InvalidAudioDigest}}
}

// RequestURL builds the clip URL. A kana-only term whose reading equals the
// term is sent as kana alone.
func (p *Provider) RequestURL(term, reading string) string {
	if reading == term && domain.IsKana(term) {
		term = ""
	}
	params := url.Values{}
	if term != "" {
		params.Set("kanji", term)
	}
	if reading != "" {
		params.Set("kana", reading)
	}
	return p.baseURL + "?" + params.Encode()
}

// Fetch downloads the clip for term. Returns nil, nil on HTTP 404.
func (p *Provider) Fetch(ctx context.Context, term, reading string) ([]byte, error) {
	reqURL := p.RequestURL(term, reading)

	p.log.DebugContext(ctx, "jpod101 request", slog.String("term", term), slog.String("reading", reading))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("jpod101: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, term)
	if err != nil {
		return nil, fmt.Errorf("jpod101: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jpod101: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("jpod101: read body: %w", err)
	}

	p.log.DebugContext(ctx, "jpod101 response", slog.String("term", term), slog.Int("bytes", len(body)))
	return body, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, term string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "jpod101 retry", slog.String("term", term), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}

	return p.httpClient.Do(req)
}
