// Package kanjicore is the core of a kanji lookup tool: it parses bracket
// transcriptions ("[電車|でんしゃ]に乗る") into renderable segments and
// selects the handful of compound words worth showing for a character.
//
// The heavy lifting lives in internal packages; this file re-exports the
// types and the two pure operations, plus the assembled lookup pipeline for
// callers that bring their own data providers.
package kanjicore

import (
	"github.com/ryoshida/kanjicore/internal/app"
	"github.com/ryoshida/kanjicore/internal/compound"
	"github.com/ryoshida/kanjicore/internal/domain"
	"github.com/ryoshida/kanjicore/internal/provider"
	"github.com/ryoshida/kanjicore/internal/service/lookup"
	"github.com/ryoshida/kanjicore/internal/transcript"
)

type (
	// Segment is one renderable unit of a transcription: plain text, or a
	// base with its reading.
	Segment = domain.Segment

	// Variant is one written/pronounced form of a dictionary entry.
	Variant = domain.Variant

	// WordCandidate is a raw dictionary entry considered for selection.
	WordCandidate = domain.WordCandidate

	// CompoundWord is one selected compound, ready for rendering.
	CompoundWord = domain.CompoundWord

	// KanjiResult is the per-character detail a kanji provider returns.
	KanjiResult = provider.KanjiResult

	// ExampleResult is one example sentence an example provider returns.
	ExampleResult = provider.ExampleResult

	// Result is the assembled page data for one character.
	Result = lookup.Result

	// Example is one segmented example sentence within a Result.
	Example = lookup.Example

	// Providers bundles the data sources for the lookup pipeline.
	Providers = app.Providers

	// App is the configured lookup pipeline.
	App = app.App
)

// Sentinel errors callers branch on with errors.Is.
var (
	ErrValidation    = domain.ErrValidation
	ErrKanjiNotFound = lookup.ErrKanjiNotFound
)

var defaultSelector = compound.NewSelector(compound.Options{})

// Segments parses a bracket-annotated transcription into ordered segments.
// Plain runs come back without a reading, bracketed pairs with one. The
// function never fails; malformed bracket syntax is dropped.
func Segments(input string) []Segment {
	return transcript.Parse(input)
}

// SelectCompounds picks at most five compound words containing literal from
// candidates, in candidate order, commonly-tagged words first. Words equal
// to the literal alone, longer than four characters, or whose primary
// meaning repeats anchorMeaning (case-insensitive; pass "" when unknown)
// are excluded, as are entries without priority tags.
func SelectCompounds(candidates []WordCandidate, literal, anchorMeaning string) []CompoundWord {
	return defaultSelector.Select(candidates, domain.NewAnchorContext(literal, anchorMeaning))
}

// New assembles the lookup pipeline from configuration (CONFIG_PATH /
// environment) and the given providers.
func New(providers Providers) (*App, error) {
	return app.New(providers)
}
