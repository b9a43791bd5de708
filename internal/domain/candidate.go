package domain

// Variant is one written/pronounced realization of a dictionary entry.
// Priorities are free-form corpus frequency tags (e.g. "ichi1", "nf03");
// a variant without any tag is considered too rare to surface.
type Variant struct {
	Written    string
	Pronounced string
	Priorities []string
}

// WordCandidate is a dictionary entry with one or more variants and one or
// more English glosses. The first gloss is authoritative.
type WordCandidate struct {
	Variants []Variant
	Glosses  []string
}

// PrimaryGloss returns the entry's authoritative gloss, or "" if the entry
// carries none.
func (c WordCandidate) PrimaryGloss() string {
	if len(c.Glosses) == 0 {
		return ""
	}
	return c.Glosses[0]
}

// CompoundWord is the externally visible shape of a selected compound:
// a written form containing the anchor character, its reading, and the
// primary English meaning.
type CompoundWord struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
	Meaning string `json:"meaning"`
}

// AnchorContext is the single queried ideograph plus its own primary
// meaning, used to filter compound candidates.
type AnchorContext struct {
	Literal string
	Meaning string
}

// NewAnchorContext builds an AnchorContext, normalizing the meaning for
// case-insensitive comparison. Meaning may be empty when the character's
// own sense is unknown.
func NewAnchorContext(literal, meaning string) AnchorContext {
	return AnchorContext{
		Literal: literal,
		Meaning: NormalizeText(meaning),
	}
}
