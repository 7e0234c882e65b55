package config

import (
	"log/slog"
	"time"
)

// Config holds the verification engine and logging settings.
type Config struct {
	// PatternCacheSize bounds the number of compiled rule patterns kept in memory.
	PatternCacheSize int `env:"VERIFY_PATTERN_CACHE_SIZE" envDefault:"256"`
	// MatchTimeout caps a single pattern evaluation; a timed out match fails the rule.
	MatchTimeout time.Duration `env:"VERIFY_MATCH_TIMEOUT" envDefault:"100ms"`
	// Strict turns out-of-range queries into panics.
	Strict bool `env:"VERIFY_STRICT" envDefault:"false"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}
