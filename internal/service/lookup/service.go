// Package lookup implements the composite per-character operation the
// rendering layer calls once per request: fetch the character's detail and
// candidate words through caller-supplied providers, select the relevant
// compounds, and segment the example transcriptions.
package lookup

import (
	"context"
	"log/slog"

	"github.com/ryoshida/kanjicore/internal/compound"
	"github.com/ryoshida/kanjicore/internal/domain"
	"github.com/ryoshida/kanjicore/internal/provider"
)

type kanjiProvider interface {
	FetchKanji(ctx context.Context, literal string) (*provider.KanjiResult, error)
}

type wordProvider interface {
	SearchWords(ctx context.Context, literal string) ([]domain.WordCandidate, error)
}

type exampleProvider interface {
	FetchExamples(ctx context.Context, literal string) ([]provider.ExampleResult, error)
}

type annotator interface {
	Annotate(text string) string
}

// Service implements the per-character lookup. The providers own all I/O;
// the service itself only composes and transforms.
type Service struct {
	log         *slog.Logger
	kanji       kanjiProvider
	words       wordProvider
	examples    exampleProvider
	annotate    annotator
	selector    *compound.Selector
	maxExamples int
}

// Options carries the optional collaborators and limits for NewService.
// Examples and Annotate may be nil: without an example provider results
// carry no examples, and without an annotator unannotated example
// sentences stay plain.
type Options struct {
	Examples    exampleProvider
	Annotate    annotator
	MaxExamples int
}

// NewService creates a lookup service.
func NewService(logger *slog.Logger, kanji kanjiProvider, words wordProvider, selector *compound.Selector, opts Options) *Service {
	maxExamples := opts.MaxExamples
	if maxExamples <= 0 {
		maxExamples = 5
	}
	return &Service{
		log:         logger.With("service", "lookup"),
		kanji:       kanji,
		words:       words,
		examples:    opts.Examples,
		annotate:    opts.Annotate,
		selector:    selector,
		maxExamples: maxExamples,
	}
}
