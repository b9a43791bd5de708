package config

import "time"

// Config is the root library configuration.
type Config struct {
	Lookup LookupConfig `yaml:"lookup"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
}

// LookupConfig holds the compound selector and example settings. The tag
// vocabulary is corpus-specific, so the preferred-tier patterns are data
// here rather than constants in code.
type LookupConfig struct {
	PreferredTagsRaw   string `yaml:"preferred_tags"       env:"LOOKUP_PREFERRED_TAGS"       env-default:"ichi1,news1,spec1,gai1"`
	FrequencyTagPrefix string `yaml:"frequency_tag_prefix" env:"LOOKUP_FREQUENCY_TAG_PREFIX" env-default:"nf"`
	FrequencyTagCutoff int    `yaml:"frequency_tag_cutoff" env:"LOOKUP_FREQUENCY_TAG_CUTOFF" env-default:"24"`
	MaxCompounds       int    `yaml:"max_compounds"        env:"LOOKUP_MAX_COMPOUNDS"        env-default:"5"`
	ScanBudget         int    `yaml:"scan_budget"          env:"LOOKUP_SCAN_BUDGET"          env-default:"10"`
	MaxWordLength      int    `yaml:"max_word_length"      env:"LOOKUP_MAX_WORD_LENGTH"      env-default:"4"`
	MaxExamples        int    `yaml:"max_examples"         env:"LOOKUP_MAX_EXAMPLES"         env-default:"5"`

	// PreferredTags is populated from PreferredTagsRaw during validation.
	PreferredTags []string `yaml:"-"`
}

// CacheConfig holds the boundary memoization settings for the composite
// per-character lookup.
type CacheConfig struct {
	Size int           `yaml:"size" env:"CACHE_SIZE" env-default:"512"`
	TTL  time.Duration `yaml:"ttl"  env:"CACHE_TTL"  env-default:"10m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
