package config

import (
	"fmt"
	"log/slog"
)

// Parser decodes raw data into a target.
//
// The section parameter selects a nested mapping using colon (:) as the
// separator, for example "environments:prod". An empty section decodes the
// entire document. Implementations handle the navigation themselves; see
// config/parser/yaml.
type Parser interface {
	Parse(data []byte, target any, section string) error
}

// DataFetcher reads raw data from a named source.
type DataFetcher interface {
	Fetch() ([]byte, error)
	Source() string
}

// Validator is implemented by targets that check themselves after parsing.
type Validator interface {
	Validate() error
}

// Provider returns a function that fetches, parses and validates data into target.
// Errors name the fetcher's source so a failed load is traceable to a file.
func Provider[T any](target *T, section string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		source := fetcher.Source()

		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}

		err = parser.Parse(data, target, section)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", source, err)
		}

		validatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := validatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating %s: %w", source, err)
			}
		}

		slog.Debug("configuration loaded",
			slog.String("source", source),
			slog.String("section", section),
			slog.Int("bytes", len(data)),
		)

		return target, nil
	}
}
