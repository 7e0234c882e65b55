package verify

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default validator logs to it too.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCache makes the engine own an existing cache instead of creating one.
// Rebuild clears it.
func WithCache(c *Cache) Option {
	return func(e *Engine) {
		if c != nil {
			e.cache = c
		}
	}
}

// WithValidator shares a validator, and its compiled patterns, between engines.
func WithValidator(v *Validator) Option {
	return func(e *Engine) {
		if v != nil {
			e.validator = v
		}
	}
}

// WithMetrics records cache activity in m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithStrict makes queries panic on out-of-range positions instead of
// logging and reporting a pass. Meant for development builds and tests.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}
