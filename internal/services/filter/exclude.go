// Package filter excludes positions by symbol.
package filter

import (
	"fmt"
	"log/slog"
	"regexp"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

// ExcludeFilter drops symbols that match any of its patterns.
type ExcludeFilter struct {
	patterns []*regexp.Regexp
	logger   *slog.Logger
}

// NewExcludeFilter creates a new exclude filter with the given patterns.
func NewExcludeFilter(patterns []string, logger *slog.Logger) (*ExcludeFilter, error) {
	if len(patterns) == 0 {
		return nil, errors.NewValidationError("exclude", "", "required", "no patterns provided for exclude filter")
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.NewValidationError("exclude", pattern, "regex",
				fmt.Sprintf("invalid regex pattern %q: %v", pattern, err))
		}
		compiled = append(compiled, re)
	}

	return &ExcludeFilter{
		patterns: compiled,
		logger:   logger,
	}, nil
}

// New returns an ExcludeFilter for patterns, or a NoOpFilter when there are none.
func New(patterns []string, logger *slog.Logger) (domain.PositionFilter, error) {
	if len(patterns) == 0 {
		return NewNoOpFilter(), nil
	}
	return NewExcludeFilter(patterns, logger)
}

// ShouldExclude returns true if symbol matches any exclude pattern.
func (f *ExcludeFilter) ShouldExclude(symbol string) bool {
	for _, pattern := range f.patterns {
		if pattern.MatchString(symbol) {
			f.logger.Debug("Excluding position", "symbol", symbol, "pattern", pattern.String())
			return true
		}
	}
	return false
}
