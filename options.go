package ssot

import (
	"io"

	"github.com/0xalexb/ssot-embed/rewrite"
	"github.com/0xalexb/ssot-embed/store"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithSource adds the store module, which loads the SSOT while the app is built.
func WithSource(opts ...store.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, store.NewModule(opts...))
	}
}

// WithRewriter adds the rewrite module. It requires WithSource.
func WithRewriter(opts ...rewrite.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, rewrite.NewModule(opts...))
	}
}

// WithLogLevel sets the log level: "debug", "info", "warn" or "error".
// Empty or invalid values fall back to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets where logs are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
