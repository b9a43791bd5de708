package jmdict

// apiEntry represents a single entry from the word-search API response.
// The API returns an array of entries ordered by relevance.
type apiEntry struct {
	Variants []apiVariant `json:"variants"`
	Senses   []apiSense   `json:"senses"`
}

// apiVariant represents one written/pronounced realization of an entry.
// Priorities carries the corpus frequency tags (e.g. "ichi1", "nf03").
type apiVariant struct {
	Written    string   `json:"written"`
	Pronounced string   `json:"pronounced"`
	Priorities []string `json:"priorities"`
}

// apiSense represents a group of English glosses sharing one meaning.
type apiSense struct {
	Glosses []string `json:"glosses"`
}
