// Package corpus parses example-sentence TSV corpora into per-kanji example
// lists. Pure function: reader in, structs out. No database dependencies.
//
// Each line holds a Japanese sentence, its bracket-annotated transcription
// (optionally empty), and an English translation, tab-separated. Sentences
// are grouped under every distinct kanji they contain, shortest first, so
// the lookup service can serve examples for any queried character offline.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ryoshida/kanjicore/internal/provider"
)

const (
	// DefaultMaxPerKanji caps how many examples are kept per character.
	DefaultMaxPerKanji = 5
	maxSentenceLen     = 500
)

// ParseResult holds parsed examples grouped by kanji literal.
type ParseResult struct {
	Examples map[string][]provider.ExampleResult
	Stats    Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines    int
	SkippedLong   int
	SkippedShort  int
	MatchedKanji  int
	TotalExamples int
}

// Parse reads a sentence TSV and returns examples grouped by the kanji each
// sentence contains. Lines with fewer than three fields, overlong
// sentences, and sentences without kanji are skipped and counted.
func Parse(r io.Reader, maxPerKanji int) (ParseResult, error) {
	if maxPerKanji <= 0 {
		maxPerKanji = DefaultMaxPerKanji
	}

	all := make(map[string][]provider.ExampleResult)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var stats Stats

	for scanner.Scan() {
		stats.TotalLines++
		line := scanner.Text()

		fields := strings.SplitN(line, "\t", 4)
		if len(fields) < 3 {
			stats.SkippedShort++
			continue
		}

		sentence := strings.TrimSpace(fields[0])
		transcription := strings.TrimSpace(fields[1])
		translation := strings.TrimSpace(fields[2])

		if sentence == "" {
			stats.SkippedShort++
			continue
		}
		if len(sentence) > maxSentenceLen {
			stats.SkippedLong++
			continue
		}

		example := provider.ExampleResult{
			Sentence:      sentence,
			Transcription: transcription,
			Translation:   translation,
		}
		for _, literal := range kanjiLiterals(sentence) {
			all[literal] = append(all[literal], example)
		}
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	// Sort by sentence length and limit per kanji.
	result := ParseResult{
		Examples: make(map[string][]provider.ExampleResult, len(all)),
	}
	for literal, examples := range all {
		sort.SliceStable(examples, func(i, j int) bool {
			return len(examples[i].Sentence) < len(examples[j].Sentence)
		})
		if len(examples) > maxPerKanji {
			examples = examples[:maxPerKanji]
		}
		result.Examples[literal] = examples
	}

	result.Stats = stats
	result.Stats.MatchedKanji = len(result.Examples)
	for _, examples := range result.Examples {
		result.Stats.TotalExamples += len(examples)
	}

	return result, nil
}

// kanjiLiterals returns the distinct ideographs of s in first-seen order.
func kanjiLiterals(s string) []string {
	seen := make(map[rune]struct{})
	var out []string
	for _, r := range s {
		if r < 0x4E00 || r > 0x9FFF {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, string(r))
	}
	return out
}
