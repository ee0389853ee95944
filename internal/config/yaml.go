package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	// ErrEmptyData is returned when there is nothing to parse.
	ErrEmptyData = errors.New("empty data")
	// ErrPathNotFound is returned when the requested section is missing.
	ErrPathNotFound = errors.New("path not found")
)

// YAMLParser implements Parser with goccy/go-yaml.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}
		return nil
	}

	yamlPath, err := yaml.PathString(toYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	if err := yamlPath.Read(bytes.NewReader(data), target); err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// toYAMLPath turns "tools:numeral" into "$.tools.numeral".
func toYAMLPath(path string) string {
	return "$." + strings.Join(strings.Split(path, ":"), ".")
}
