package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	return nil
}

func (l *LookupConfig) validate() error {
	if l.MaxCompounds <= 0 {
		return fmt.Errorf("max_compounds must be > 0 (got %d)", l.MaxCompounds)
	}
	if l.ScanBudget < l.MaxCompounds {
		return fmt.Errorf("scan_budget must be >= max_compounds (got %d < %d)", l.ScanBudget, l.MaxCompounds)
	}
	if l.MaxWordLength <= 0 {
		return fmt.Errorf("max_word_length must be > 0 (got %d)", l.MaxWordLength)
	}
	if l.MaxExamples < 0 {
		return fmt.Errorf("max_examples must be >= 0 (got %d)", l.MaxExamples)
	}
	if l.FrequencyTagCutoff < 0 || l.FrequencyTagCutoff > 99 {
		return fmt.Errorf("frequency_tag_cutoff must be within [0, 99] (got %d)", l.FrequencyTagCutoff)
	}
	if l.FrequencyTagCutoff > 0 && l.FrequencyTagPrefix == "" {
		return fmt.Errorf("frequency_tag_prefix is required when frequency_tag_cutoff is set")
	}

	l.PreferredTags = ParsePreferredTags(l.PreferredTagsRaw)
	if len(l.PreferredTags) == 0 && l.FrequencyTagCutoff == 0 {
		return fmt.Errorf("at least one preferred tag or a frequency cutoff is required")
	}

	return nil
}

func (c *CacheConfig) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be > 0 (got %d)", c.Size)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", c.TTL)
	}
	return nil
}

// ParsePreferredTags parses a comma-separated tag list (e.g. "ichi1,news1")
// into a slice, skipping blank items. An empty string returns a nil slice.
func ParsePreferredTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
