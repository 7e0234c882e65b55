package verify

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmitrymomot/sheetverify/pkg/logger"
)

const (
	// DefaultPatternCacheSize is the number of compiled patterns kept by a Validator.
	DefaultPatternCacheSize = 256
	// DefaultMatchTimeout caps a single pattern evaluation.
	DefaultMatchTimeout = 100 * time.Millisecond
)

type compiled struct {
	re  *regexp2.Regexp
	err error
}

// Validator tests values against rule patterns. Compiled patterns, including
// compile failures, are memoised in a bounded LRU.
type Validator struct {
	patterns     *lru.Cache[string, compiled]
	reported     map[string]struct{}
	matchTimeout time.Duration
	cacheSize    int
	logger       *slog.Logger
	metrics      *Metrics
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithPatternCacheSize sets how many compiled patterns are kept.
// Non-positive sizes fall back to DefaultPatternCacheSize.
func WithPatternCacheSize(n int) ValidatorOption {
	return func(v *Validator) {
		if n > 0 {
			v.cacheSize = n
		}
	}
}

// WithMatchTimeout caps a single match. Zero disables the timeout.
func WithMatchTimeout(d time.Duration) ValidatorOption {
	return func(v *Validator) {
		v.matchTimeout = d
	}
}

// WithValidatorLogger sets the logger that receives malformed pattern reports.
func WithValidatorLogger(l *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithValidatorMetrics counts malformed patterns in m.
func WithValidatorMetrics(m *Metrics) ValidatorOption {
	return func(v *Validator) {
		v.metrics = m
	}
}

// NewValidator creates a Validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		reported:     make(map[string]struct{}),
		matchTimeout: DefaultMatchTimeout,
		cacheSize:    DefaultPatternCacheSize,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}

	// lru.New only fails for non-positive sizes, which the options rule out.
	patterns, err := lru.New[string, compiled](v.cacheSize)
	if err != nil {
		panic(fmt.Sprintf("verify: pattern cache: %v", err))
	}
	v.patterns = patterns
	return v
}

// Compile reports whether pattern is a usable rule pattern. The error wraps
// ErrMalformedPattern.
func (v *Validator) Compile(pattern string) error {
	_, err := v.compile(pattern)
	return err
}

// Validate reports whether value passes pattern. Malformed patterns and
// match errors count as failures.
func (v *Validator) Validate(pattern string, value any) bool {
	re, err := v.compile(pattern)
	if err != nil {
		v.report(pattern, err)
		return false
	}

	ok, err := re.MatchString(Stringify(value))
	if err != nil {
		v.report(pattern, err)
		return false
	}
	return ok
}

// Failures evaluates rules in declaration order and returns the failing ones.
func (v *Validator) Failures(rules []Rule, value any) []Failure {
	var failures []Failure
	for _, rule := range rules {
		if !v.Validate(rule.Pattern, value) {
			failures = append(failures, Failure{
				Pattern:      rule.Pattern,
				Value:        value,
				ErrorMessage: rule.ErrorMessage,
			})
		}
	}
	return failures
}

func (v *Validator) compile(pattern string) (*regexp2.Regexp, error) {
	if c, ok := v.patterns.Get(pattern); ok {
		return c.re, c.err
	}

	re, err := regexp2.Compile(strings.TrimSpace(pattern), regexp2.ECMAScript)
	if err != nil {
		err = fmt.Errorf("%w: %q: %w", ErrMalformedPattern, pattern, err)
		re = nil
	} else if v.matchTimeout > 0 {
		re.MatchTimeout = v.matchTimeout
	}

	v.patterns.Add(pattern, compiled{re: re, err: err})
	return re, err
}

// report logs a broken pattern the first time it is seen.
func (v *Validator) report(pattern string, err error) {
	if _, seen := v.reported[pattern]; seen {
		return
	}
	v.reported[pattern] = struct{}{}
	v.metrics.malformedPattern()
	v.logger.Warn("rule pattern cannot be evaluated, failing every value it checks",
		logger.Pattern(pattern),
		logger.Error(err),
	)
}
