package rewrite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// ErrNoPatterns is returned when the pattern list is empty after defaults.
var ErrNoPatterns = errors.New("at least one file pattern is required")

// DefaultPatterns are the documentation files visited by a directory run.
//
//nolint:gochecknoglobals // read-only default list
var DefaultPatterns = []string{"*.md", "*.rst", "*.txt"}

// WriteFunc replaces the content of the file at path.
type WriteFunc func(path string, r io.Reader) error

// Config holds the rewriter settings.
type Config struct {
	// Patterns are glob patterns matched against file base names.
	Patterns []string
	// DryRun reports changes without writing them.
	DryRun bool
	// Writer replaces file content; defaults to WriteAtomic.
	Writer WriteFunc
}

// SetDefaults fills in DefaultPatterns and WriteAtomic.
func (c *Config) SetDefaults() {
	if len(c.Patterns) == 0 {
		c.Patterns = append([]string(nil), DefaultPatterns...)
	}

	if c.Writer == nil {
		c.Writer = WriteAtomic
	}
}

// Validate checks that every pattern is well-formed.
func (c *Config) Validate() error {
	if len(c.Patterns) == 0 {
		return ErrNoPatterns
	}

	return ValidatePatterns(c.Patterns)
}

// ValidatePatterns reports the first malformed glob pattern.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		_, err := filepath.Match(pattern, "")
		if err != nil {
			return fmt.Errorf("pattern %q: %w", pattern, err)
		}
	}

	return nil
}

// Option configures the rewriter.
type Option func(*Config)

// WithPatterns replaces the default file patterns.
func WithPatterns(patterns ...string) Option {
	return func(cfg *Config) {
		cfg.Patterns = append(cfg.Patterns, patterns...)
	}
}

// WithDryRun disables writes.
func WithDryRun(dryRun bool) Option {
	return func(cfg *Config) {
		cfg.DryRun = dryRun
	}
}

// WithWriter replaces the file writer.
func WithWriter(writer WriteFunc) Option {
	return func(cfg *Config) {
		cfg.Writer = writer
	}
}

// WriteAtomic replaces path through a temporary file and rename, keeping
// the permissions of the file it replaces.
func WriteAtomic(path string, r io.Reader) error {
	info, statErr := os.Stat(path)

	err := atomic.WriteFile(path, r)
	if err != nil {
		return fmt.Errorf("atomic write %q: %w", path, err)
	}

	if statErr == nil {
		err = os.Chmod(path, info.Mode().Perm())
		if err != nil {
			return fmt.Errorf("restoring mode of %q: %w", path, err)
		}
	}

	return nil
}
