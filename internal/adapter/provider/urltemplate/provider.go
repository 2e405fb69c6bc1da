// Package urltemplate is a configurable audio provider: the request URL is
// built from a template with {term} and {reading} placeholders.
package urltemplate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/sentencemine/internal/fallback"
)

const defaultTimeout = 10 * time.Second

// Provider fetches audio from a templated URL.
type Provider struct {
	name       string
	template   string
	sentinels  []string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. template must contain {term} or {reading}.
func NewProvider(name, template string, sentinels []string, logger *slog.Logger, timeout time.Duration) (*Provider, error) {
	if name == "" {
		return nil, fmt.Errorf("urltemplate: name is required")
	}
	if !strings.Contains(template, "{term}") && !strings.Contains(template, "{reading}") {
		return nil, fmt.Errorf("urltemplate %s: template has no {term} or {reading} placeholder", name)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		name:       name,
		template:   template,
		sentinels:  sentinels,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "urltemplate", "provider", name),
	}, nil
}

// Source wraps the provider for the fallback resolver.
func (p *Provider) Source() fallback.Source {
	return fallback.Source{Name: p.name, Fetch: p.Fetch, Sentinels: p.sentinels}
}

// RequestURL expands the template with query-escaped values.
func (p *Provider) RequestURL(term, reading string) string {
	return strings.NewReplacer(
		"{term}", url.QueryEscape(term),
		"{reading}", url.QueryEscape(reading),
	).Replace(p.template)
}

// Fetch downloads the audio. Returns nil, nil on HTTP 404.
func (p *Provider) Fetch(ctx context.Context, term, reading string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.RequestURL(term, reading), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", p.name, err)
	}

	p.log.DebugContext(ctx, "audio request", slog.String("term", term))

	resp, err := p.doWithRetry(ctx, req, term)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", p.name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s: unexpected status %d", p.name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", p.name, err)
	}
	return body, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, term string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	p.log.WarnContext(ctx, "audio retry", slog.String("term", term), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}
	return p.httpClient.Do(req)
}
