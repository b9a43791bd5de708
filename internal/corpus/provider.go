package corpus

import (
	"context"
	"fmt"
	"io"

	"github.com/ryoshida/kanjicore/internal/provider"
)

// Provider serves parsed corpus examples through the lookup service's
// example-provider interface. It is immutable after construction and safe
// for concurrent use.
type Provider struct {
	examples map[string][]provider.ExampleResult
}

// NewProvider parses the corpus from r and returns a ready provider.
func NewProvider(r io.Reader, maxPerKanji int) (*Provider, error) {
	result, err := Parse(r, maxPerKanji)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	return &Provider{examples: result.Examples}, nil
}

// FetchExamples returns the examples containing the given kanji literal,
// shortest sentence first. Unknown literals yield an empty slice, never an
// error.
func (p *Provider) FetchExamples(_ context.Context, literal string) ([]provider.ExampleResult, error) {
	return p.examples[literal], nil
}
