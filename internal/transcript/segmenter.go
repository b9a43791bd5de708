// Package transcript parses the compact bracket-annotated transcription
// format used for furigana-style glosses. A transcription mixes plain runs
// with bracket spans of the form [base|annotation]; Parse turns one such
// string into an ordered sequence of text/reading segments.
package transcript

import (
	"regexp"
	"strings"

	"github.com/ryoshida/kanjicore/internal/domain"
)

// tokenRe matches, at each position, either a bracket span or a maximal
// plain run. The base ends at the first '|'; the annotation runs to the
// closing ']' and may itself contain '|' characters. Plain runs contain
// neither bracket character. Anything matching neither alternative (a stray
// '[' or ']') is skipped by the scan.
var tokenRe = regexp.MustCompile(`\[([^|]*)\|([^\]]*)\]|([^\[\]]+)`)

// Parse converts an annotated transcription into ordered segments.
//
// Bracket spans produce a segment with a reading; the reading keeps
// everything between the first '|' and the closing ']', with any residual
// '|' characters collapsed out. Spans whose base is blank are dropped, as
// are whitespace-only plain runs. Malformed input degrades to fewer or zero
// segments; Parse never fails.
func Parse(input string) []domain.Segment {
	if input == "" {
		return nil
	}

	var segments []domain.Segment
	for _, m := range tokenRe.FindAllStringSubmatch(input, -1) {
		if plain := m[3]; plain != "" {
			if strings.TrimSpace(plain) == "" {
				continue
			}
			segments = append(segments, domain.Segment{Text: plain})
			continue
		}

		base := m[1]
		if strings.TrimSpace(base) == "" {
			continue
		}
		reading := strings.ReplaceAll(m[2], "|", "")
		segments = append(segments, domain.Segment{Text: base, Reading: &reading})
	}

	return segments
}
