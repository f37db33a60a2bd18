package store

import "errors"

// DefaultSourcePath is the SSOT location used when none is given.
const DefaultSourcePath = "docs/architecture/ec2_backend.yaml"

// ErrEmptySourcePath is returned when the source path is empty after defaults.
var ErrEmptySourcePath = errors.New("source path must not be empty")

// Config selects the SSOT file and the section lookups are scoped to.
type Config struct {
	SourcePath string
	Section    string
}

// SetDefaults fills in DefaultSourcePath.
func (c *Config) SetDefaults() {
	if c.SourcePath == "" {
		c.SourcePath = DefaultSourcePath
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.SourcePath == "" {
		return ErrEmptySourcePath
	}

	return nil
}

// Option configures the store module.
type Option func(*Config)

// WithSourcePath sets the SSOT file path.
func WithSourcePath(path string) Option {
	return func(cfg *Config) {
		cfg.SourcePath = path
	}
}

// WithSection scopes lookups to a colon-separated section, e.g. "environments:prod".
func WithSection(section string) Option {
	return func(cfg *Config) {
		cfg.Section = section
	}
}
