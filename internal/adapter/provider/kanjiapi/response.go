package kanjiapi

// apiKanji represents a character detail response. The shape follows the
// kanjiapi.dev convention: a single object per character with grouped
// reading lists.
type apiKanji struct {
	Kanji       string   `json:"kanji"`
	Meanings    []string `json:"meanings"`
	KunReadings []string `json:"kun_readings"`
	OnReadings  []string `json:"on_readings"`
}
