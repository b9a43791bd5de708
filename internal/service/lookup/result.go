package lookup

import "github.com/ryoshida/kanjicore/internal/domain"

// Example is a usage example ready for furigana rendering.
type Example struct {
	Sentence    string           `json:"sentence"`
	Translation string           `json:"translation,omitempty"`
	Segments    []domain.Segment `json:"segments"`
}

// Result is everything the rendering layer needs for one character page.
type Result struct {
	Literal     string                `json:"literal"`
	Meanings    []string              `json:"meanings"`
	KunReadings []string              `json:"kun_readings,omitempty"`
	OnReadings  []string              `json:"on_readings,omitempty"`
	Compounds   []domain.CompoundWord `json:"compounds"`
	Examples    []Example             `json:"examples"`
}
