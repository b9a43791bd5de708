// Package kanjiapi decodes character detail payloads into kanji results.
// Like the other provider adapters it never fetches; the calling layer owns
// the HTTP round trip and hands over the body.
package kanjiapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ryoshida/kanjicore/internal/provider"
)

// DecodeKanji parses a character detail body. An empty or "null" body means
// the character is unknown to the source and yields (nil, nil), matching
// the not-found convention of the other providers.
func DecodeKanji(body []byte) (*provider.KanjiResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var k apiKanji
	if err := json.Unmarshal(trimmed, &k); err != nil {
		return nil, fmt.Errorf("kanjiapi: decode kanji response: %w", err)
	}
	if k.Kanji == "" {
		return nil, nil
	}

	return &provider.KanjiResult{
		Literal:     k.Kanji,
		Meanings:    cleanList(k.Meanings),
		KunReadings: cleanList(k.KunReadings),
		OnReadings:  cleanList(k.OnReadings),
	}, nil
}

// cleanList drops blank items, preserving order.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
