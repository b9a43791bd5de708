// Package compound selects and ranks compound-word records for an anchor
// character out of a larger candidate pool, using two priority tiers with
// hard collection caps, first-occurrence dedup, and relevance filters.
package compound

import (
	"strings"
	"unicode/utf8"

	"github.com/ryoshida/kanjicore/internal/domain"
)

const (
	// DefaultMaxResults bounds the final result and the preferred tier.
	DefaultMaxResults = 5
	// DefaultScanBudget bounds how many variants both tiers may hold
	// combined before the scan stops.
	DefaultScanBudget = 10
	// DefaultMaxWordLength is the longest written form, in runes, still
	// considered a compact compound rather than a phrase.
	DefaultMaxWordLength = 4
)

// Options tune the selector. Zero values fall back to the defaults above;
// nil Matchers fall back to DefaultMatchers.
type Options struct {
	Matchers      []TagMatcher
	MaxResults    int
	ScanBudget    int
	MaxWordLength int
}

// Selector picks a bounded, ranked short list of compound words for an
// anchor character. It is stateless apart from its configuration and safe
// for concurrent use.
type Selector struct {
	matchers      []TagMatcher
	maxResults    int
	scanBudget    int
	maxWordLength int
}

// NewSelector creates a Selector from opts.
func NewSelector(opts Options) *Selector {
	s := &Selector{
		matchers:      opts.Matchers,
		maxResults:    opts.MaxResults,
		scanBudget:    opts.ScanBudget,
		maxWordLength: opts.MaxWordLength,
	}
	if s.matchers == nil {
		s.matchers = DefaultMatchers()
	}
	if s.maxResults <= 0 {
		s.maxResults = DefaultMaxResults
	}
	if s.scanBudget <= 0 {
		s.scanBudget = DefaultScanBudget
	}
	if s.maxWordLength <= 0 {
		s.maxWordLength = DefaultMaxWordLength
	}
	return s
}

// Select scans candidates in input order and returns at most MaxResults
// compound words containing the anchor character.
//
// Eligible variants are split into a preferred tier (at least one priority
// tag accepted by the matchers) and an other tier. Both caps are enforced
// during the scan: the preferred tier stops accepting at MaxResults, the
// combined tiers stop the variant scan at ScanBudget, and the entry loop
// stops entirely once the preferred tier is full. Earlier entries are
// therefore strictly favored. The tiers are then concatenated (preferred
// first), deduplicated by written form keeping the first occurrence, and
// truncated.
//
// Select never fails: an empty or all-ineligible pool yields an empty list.
func (s *Selector) Select(candidates []domain.WordCandidate, anchor domain.AnchorContext) []domain.CompoundWord {
	var preferred, other []domain.CompoundWord

	for _, entry := range candidates {
		if len(preferred) >= s.maxResults {
			break
		}

		for _, variant := range entry.Variants {
			if len(preferred)+len(other) >= s.scanBudget {
				break
			}
			if !s.eligible(variant, entry, anchor) {
				continue
			}

			word := domain.CompoundWord{
				Word:    variant.Written,
				Reading: variant.Pronounced,
				Meaning: entry.PrimaryGloss(),
			}
			if matchesAny(s.matchers, variant.Priorities) {
				if len(preferred) < s.maxResults {
					preferred = append(preferred, word)
				}
			} else {
				other = append(other, word)
			}
		}
	}

	return s.assemble(preferred, other)
}

// eligible applies the relevance filters from most to least structural.
func (s *Selector) eligible(v domain.Variant, entry domain.WordCandidate, anchor domain.AnchorContext) bool {
	if v.Written == "" || v.Pronounced == "" || len(entry.Glosses) == 0 {
		return false
	}
	// The anchor alone is never a compound.
	if v.Written == anchor.Literal {
		return false
	}
	// A compound must visibly contain the queried character.
	if !strings.Contains(v.Written, anchor.Literal) {
		return false
	}
	if utf8.RuneCountInString(v.Written) > s.maxWordLength {
		return false
	}
	// A word whose primary sense matches the anchor's adds nothing.
	if anchor.Meaning != "" && domain.NormalizeText(entry.PrimaryGloss()) == anchor.Meaning {
		return false
	}
	return hasAnyTag(v.Priorities)
}

// assemble concatenates the tiers, dedups by written form keeping the first
// (higher-priority) occurrence, and truncates to the result cap.
func (s *Selector) assemble(preferred, other []domain.CompoundWord) []domain.CompoundWord {
	merged := make([]domain.CompoundWord, 0, len(preferred)+len(other))
	merged = append(merged, preferred...)
	merged = append(merged, other...)

	seen := make(map[string]struct{}, len(merged))
	result := make([]domain.CompoundWord, 0, s.maxResults)
	for _, w := range merged {
		if _, dup := seen[w.Word]; dup {
			continue
		}
		seen[w.Word] = struct{}{}
		result = append(result, w)
		if len(result) == s.maxResults {
			break
		}
	}

	return result
}
