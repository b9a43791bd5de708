// Package jmdict decodes word-search API payloads into dictionary entry
// candidates. It performs no fetching: the calling layer hands it the raw
// response body.
package jmdict

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ryoshida/kanjicore/internal/domain"
)

// DecodeSearch parses a word-search response body into candidate entries,
// preserving the API's relevance order. A "null" or empty-array body yields
// an empty slice. Entries that survive decoding but carry no usable variant
// or gloss are kept as-is; relevance filtering is the selector's job.
func DecodeSearch(body []byte) ([]domain.WordCandidate, error) {
	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("jmdict: decode search response: %w", err)
	}

	candidates := make([]domain.WordCandidate, 0, len(entries))
	for _, e := range entries {
		candidates = append(candidates, mapEntry(e))
	}
	return candidates, nil
}

// mapEntry converts one API entry. Variant forms are trimmed; glosses are
// flattened across senses in order, blank ones dropped, so the first gloss
// stays authoritative.
func mapEntry(e apiEntry) domain.WordCandidate {
	c := domain.WordCandidate{
		Variants: make([]domain.Variant, 0, len(e.Variants)),
	}

	for _, v := range e.Variants {
		c.Variants = append(c.Variants, domain.Variant{
			Written:    strings.TrimSpace(v.Written),
			Pronounced: strings.TrimSpace(v.Pronounced),
			Priorities: v.Priorities,
		})
	}

	for _, sense := range e.Senses {
		for _, gloss := range sense.Glosses {
			if strings.TrimSpace(gloss) == "" {
				continue
			}
			c.Glosses = append(c.Glosses, gloss)
		}
	}

	return c
}
