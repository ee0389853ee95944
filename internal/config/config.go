// Package config loads numeral settings from YAML.
//
// Loading is split the same way for every source: a DataFetcher produces
// bytes, a Parser decodes them (optionally below a colon separated path such
// as "tools:numeral") and Provider applies defaults and validation on top.
package config

import (
	"fmt"
	"log/slog"

	"github.com/vipcxj/numeral/internal/logging"
)

// Parser decodes configuration data into target. path navigates into the
// document with ':' between keys; the empty path decodes the whole document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher reads raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by settings that can check themselves.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by settings that can fill in missing values.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a loader that fetches, parses, defaults and validates
// into target, in that order. logger may be nil.
func Provider[T any](logger *slog.Logger, target *T, path string) func(Parser, DataFetcher) (*T, error) {
	logger = logging.OrDiscard(logger)
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		if err := parser.Parse(data, target, path); err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		if d, ok := any(target).(Defaulter); ok && d.SetDefaults() {
			logger.Info("defaults applied", slog.String("path", path))
		}

		if v, ok := any(target).(Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
