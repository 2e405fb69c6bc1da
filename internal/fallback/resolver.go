// Package fallback tries an ordered list of sources until one returns
// content that is not a known placeholder.
package fallback

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrExhausted is returned when no source produced valid content.
	ErrExhausted = errors.New("all sources exhausted")
	// ErrNoSources is returned by NewResolver for an empty chain.
	ErrNoSources = errors.New("no sources configured")
)

// FetchFunc fetches content for a term and its reading.
type FetchFunc func(ctx context.Context, term, reading string) ([]byte, error)

// Source is one provider in the fallback chain. Sentinels holds hex sha256
// digests of responses that mean "nothing here" (placeholder pages, silent
// clips).
type Source struct {
	Name      string
	Fetch     FetchFunc
	Sentinels []string
}

// Result is the first valid response.
type Result struct {
	Source string
	Data   []byte
}

// Resolver runs sources in order and stops at the first valid response.
type Resolver struct {
	log     *slog.Logger
	sources []compiledSource
}

type compiledSource struct {
	Source
	sentinels map[string]struct{}
}

// NewResolver validates the chain and its sentinel digests. At least one
// source is required.
func NewResolver(log *slog.Logger, sources ...Source) (*Resolver, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	compiled := make([]compiledSource, 0, len(sources))
	for _, s := range sources {
		if s.Fetch == nil {
			return nil, fmt.Errorf("source %q: fetch function is nil", s.Name)
		}
		set := make(map[string]struct{}, len(s.Sentinels))
		for _, h := range s.Sentinels {
			h = strings.ToLower(strings.TrimSpace(h))
			if !IsDigest(h) {
				return nil, fmt.Errorf("source %q: invalid sentinel digest %q", s.Name, h)
			}
			set[h] = struct{}{}
		}
		compiled = append(compiled, compiledSource{Source: s, sentinels: set})
	}
	return &Resolver{log: log.With("service", "fallback"), sources: compiled}, nil
}

// Resolve returns the first response that is non-empty and does not match a
// sentinel of its source. Source errors are logged and the next source is
// tried. Context cancellation stops the chain.
func (r *Resolver) Resolve(ctx context.Context, term, reading string) (Result, error) {
	for _, s := range r.sources {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		data, err := s.Fetch(ctx, term, reading)
		if err != nil {
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}
			r.log.Warn("source failed",
				slog.String("source", s.Name),
				slog.String("term", term),
				slog.String("error", err.Error()),
			)
			continue
		}
		if len(data) == 0 {
			r.log.Debug("source returned nothing", slog.String("source", s.Name), slog.String("term", term))
			continue
		}
		if _, bad := s.sentinels[Digest(data)]; bad {
			r.log.Debug("source returned placeholder", slog.String("source", s.Name), slog.String("term", term))
			continue
		}
		return Result{Source: s.Name, Data: data}, nil
	}
	return Result{}, fmt.Errorf("resolve %q: %w", term, ErrExhausted)
}

// Digest returns the hex sha256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// IsDigest reports whether s looks like a lowercase hex sha256 digest.
func IsDigest(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil && strings.ToLower(s) == s
}
