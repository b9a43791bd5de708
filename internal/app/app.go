// Package app wires configuration, logging, and the lookup pipeline into a
// ready-to-use application object. Callers supply the data providers; the
// package decides nothing about where the data comes from.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ryoshida/kanjicore/internal/compound"
	"github.com/ryoshida/kanjicore/internal/config"
	"github.com/ryoshida/kanjicore/internal/domain"
	"github.com/ryoshida/kanjicore/internal/provider"
	"github.com/ryoshida/kanjicore/internal/service/lookup"
)

// KanjiProvider supplies per-character detail. A nil result with a nil
// error means the character is unknown.
type KanjiProvider interface {
	FetchKanji(ctx context.Context, literal string) (*provider.KanjiResult, error)
}

// WordProvider supplies word candidates containing the character.
type WordProvider interface {
	SearchWords(ctx context.Context, literal string) ([]domain.WordCandidate, error)
}

// ExampleProvider supplies example sentences containing the character.
type ExampleProvider interface {
	FetchExamples(ctx context.Context, literal string) ([]provider.ExampleResult, error)
}

// Annotator adds bracketed reading annotations to plain sentences.
type Annotator interface {
	Annotate(text string) string
}

// Providers bundles the data sources the lookup pipeline runs on.
// Kanji and Words are required; Examples and Annotate are optional.
type Providers struct {
	Kanji    KanjiProvider
	Words    WordProvider
	Examples ExampleProvider
	Annotate Annotator
}

// App is the assembled lookup pipeline.
type App struct {
	Config *config.Config
	Log    *slog.Logger
	Lookup *lookup.Cached
}

// New loads configuration, initializes the logger, and assembles the
// selector, lookup service, and memoization layer around the given
// providers.
func New(providers Providers) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, providers)
}

// NewWithConfig is New with a caller-built configuration, for embedders
// that manage configuration themselves. cfg must already be validated.
func NewWithConfig(cfg *config.Config, providers Providers) (*App, error) {
	if providers.Kanji == nil {
		return nil, fmt.Errorf("app: kanji provider is required")
	}
	if providers.Words == nil {
		return nil, fmt.Errorf("app: word provider is required")
	}

	logger := NewLogger(cfg.Log)

	selector := compound.NewSelector(compound.Options{
		Matchers:      buildMatchers(cfg.Lookup),
		MaxResults:    cfg.Lookup.MaxCompounds,
		ScanBudget:    cfg.Lookup.ScanBudget,
		MaxWordLength: cfg.Lookup.MaxWordLength,
	})

	svc := lookup.NewService(logger, providers.Kanji, providers.Words, selector, lookup.Options{
		Examples:    providers.Examples,
		Annotate:    providers.Annotate,
		MaxExamples: cfg.Lookup.MaxExamples,
	})

	logger.Info("lookup pipeline ready",
		slog.String("version", BuildVersion()),
		slog.Int("max_compounds", cfg.Lookup.MaxCompounds),
		slog.Int("cache_size", cfg.Cache.Size),
		slog.Duration("cache_ttl", cfg.Cache.TTL),
	)

	return &App{
		Config: cfg,
		Log:    logger,
		Lookup: lookup.NewCached(svc, cfg.Cache.Size, cfg.Cache.TTL),
	}, nil
}

// buildMatchers translates the configured tag vocabulary into selector
// matchers.
func buildMatchers(cfg config.LookupConfig) []compound.TagMatcher {
	var matchers []compound.TagMatcher
	if len(cfg.PreferredTags) > 0 {
		matchers = append(matchers, compound.ExactTags(cfg.PreferredTags...))
	}
	if cfg.FrequencyTagCutoff > 0 {
		matchers = append(matchers, compound.RankedPrefix(cfg.FrequencyTagPrefix, cfg.FrequencyTagCutoff))
	}
	return matchers
}
