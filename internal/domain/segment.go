package domain

// Segment is one unit of an annotated transcription: a run of text with an
// optional phonetic reading rendered above it (furigana).
//
// Text is always non-empty. Reading is non-nil only for segments that came
// from a bracket span; it may point at an empty string when the annotation
// itself was empty.
type Segment struct {
	Text    string  `json:"text"`
	Reading *string `json:"reading,omitempty"`
}

// HasReading reports whether the segment carries a reading annotation.
func (s Segment) HasReading() bool {
	return s.Reading != nil
}
