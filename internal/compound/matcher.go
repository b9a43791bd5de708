package compound

import (
	"strconv"
	"strings"
)

// TagMatcher reports whether a priority tag marks a variant as belonging to
// the preferred tier. The tag vocabulary is corpus-specific, so matchers are
// injected as data rather than hard-coded in the selector.
type TagMatcher func(tag string) bool

// ExactTags matches any of the given tags exactly.
func ExactTags(tags ...string) TagMatcher {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return func(tag string) bool {
		_, ok := set[tag]
		return ok
	}
}

// RankedPrefix matches tags of the form prefix + two-digit rank (e.g.
// "nf03") whose rank is between 1 and maxRank inclusive. These are the
// corpus's banded frequency markers; lower ranks mean more frequent.
func RankedPrefix(prefix string, maxRank int) TagMatcher {
	return func(tag string) bool {
		rest, ok := strings.CutPrefix(tag, prefix)
		if !ok || len(rest) != 2 {
			return false
		}
		rank, err := strconv.Atoi(rest)
		if err != nil {
			return false
		}
		return rank >= 1 && rank <= maxRank
	}
}

// DefaultMatchers returns the preferred-tier matchers for the JMdict tag
// vocabulary: the top bands of the four curated lists plus the first
// frequency-ranked bands.
func DefaultMatchers() []TagMatcher {
	return []TagMatcher{
		ExactTags("ichi1", "news1", "spec1", "gai1"),
		RankedPrefix("nf", 24),
	}
}

// matchesAny reports whether any non-empty tag satisfies any matcher.
func matchesAny(matchers []TagMatcher, tags []string) bool {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		for _, m := range matchers {
			if m(tag) {
				return true
			}
		}
	}
	return false
}

// hasAnyTag reports whether the variant carries at least one non-empty
// priority tag.
func hasAnyTag(tags []string) bool {
	for _, tag := range tags {
		if tag != "" {
			return true
		}
	}
	return false
}
