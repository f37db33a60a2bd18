// Package ssot assembles the SSOT embedder: it loads the source of truth,
// builds the marker resolver and file rewriter, and exposes them through an
// Fx container that lives for a single run.
package ssot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/ssot-embed/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App wires the tool's components with Fx for a single run.
type App struct {
	app *fx.App
}

// NewApp creates a new App from the given options.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(loggerConfig, output)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			if logging.ParseLevel(options.LogLevel) > slog.LevelDebug {
				return fxevent.NopLogger
			}

			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	)
}

// Start builds the graph and runs start hooks. A failed SSOT load surfaces here.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Stop runs stop hooks.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the app, calls fn, and stops the app. Errors from fn and Stop are joined.
func (app *App) Run(fn func() error) error {
	err := app.Start()
	if err != nil {
		return err
	}

	runErr := fn()
	stopErr := app.Stop()

	return errors.Join(runErr, stopErr)
}
