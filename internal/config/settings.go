package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vipcxj/numeral/internal/interval"
	"github.com/vipcxj/numeral/internal/logging"
	"github.com/vipcxj/numeral/internal/shell"
)

// Settings are the user-tunable defaults of the numeral command. Command
// line flags override them.
//
//	log_level: debug
//	shell: powershell
//	preserve_base: true
//	env_prefix: APP_
//	export: false
//	ranges:
//	  port: "[1 .. 65535]"
type Settings struct {
	LogLevel     string `yaml:"log_level"`
	Shell        string `yaml:"shell"`
	PreserveBase bool   `yaml:"preserve_base"`
	EnvPrefix    string `yaml:"env_prefix"`
	Export       bool   `yaml:"export"`
	// Ranges names interval sets that export checks values against, keyed
	// by variable name before the prefix is applied.
	Ranges map[string]string `yaml:"ranges"`

	ranges map[string]interval.Set
}

// Default returns settings with every default applied.
func Default() *Settings {
	s := &Settings{}
	s.SetDefaults()
	return s
}

func (s *Settings) SetDefaults() bool {
	changed := false
	if s.LogLevel == "" {
		s.LogLevel = logging.DefaultLevel
		changed = true
	}
	if s.Shell == "" {
		s.Shell = shell.ShellTypeAuto.String()
		changed = true
	}
	return changed
}

func (s *Settings) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if _, err := shell.ShellTypeString(s.Shell); err != nil {
		errs = append(errs, fmt.Errorf("shell: %w", err))
	}
	s.ranges = make(map[string]interval.Set, len(s.Ranges))
	for name, text := range s.Ranges {
		set, err := interval.ParseSet(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("ranges.%s: %w", name, err))
			continue
		}
		s.ranges[name] = set
	}
	return errors.Join(errs...)
}

// ShellType returns the configured shell. Call it only on validated settings.
func (s *Settings) ShellType() shell.ShellType {
	st, err := shell.ShellTypeString(s.Shell)
	if err != nil {
		return shell.ShellTypeAuto
	}
	return st
}

// Range returns the validated interval set registered under name.
func (s *Settings) Range(name string) (interval.Set, bool) {
	set, ok := s.ranges[name]
	return set, ok
}

// Load reads settings from the YAML file at path, below section when it is
// not empty. An empty path yields Default().
func Load(logger *slog.Logger, path, section string) (*Settings, error) {
	if path == "" {
		return Default(), nil
	}

	fetcher, err := NewFileFetcher(path)
	if err != nil {
		return nil, err
	}

	settings, err := Provider(logger, &Settings{}, section)(NewYAMLParser(), fetcher)
	if err != nil {
		return nil, fmt.Errorf("settings %s: %w", fetcher.Path(), err)
	}

	logging.OrDiscard(logger).Debug("settings loaded",
		slog.String("path", fetcher.Path()),
		slog.String("section", section),
		slog.String("log_level", settings.LogLevel),
		slog.String("shell", settings.Shell),
		slog.Int("ranges", len(settings.Ranges)),
	)
	return settings, nil
}
