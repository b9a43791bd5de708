// Package provider defines the structured shapes the lookup service
// consumes from external dictionary and corpus sources. The fetching itself
// belongs to the calling layer; adapters in internal/adapter/provider only
// decode already-fetched payloads into these shapes.
package provider

// KanjiResult is the structured detail for a single character.
type KanjiResult struct {
	Literal     string
	Meanings    []string
	KunReadings []string
	OnReadings  []string
}

// PrimaryMeaning returns the character's authoritative meaning, or "" when
// none is known.
func (r *KanjiResult) PrimaryMeaning() string {
	if r == nil || len(r.Meanings) == 0 {
		return ""
	}
	return r.Meanings[0]
}

// ExampleResult is a usage example sentence. Transcription uses the
// [base|annotation] bracket convention; it may be empty when the source
// supplied only the raw sentence.
type ExampleResult struct {
	Sentence      string
	Transcription string
	Translation   string
}
