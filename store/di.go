package store

import (
	"github.com/0xalexb/ssot-embed/config"
	filefetcher "github.com/0xalexb/ssot-embed/config/fetcher/file"
	yamlparser "github.com/0xalexb/ssot-embed/config/parser/yaml"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that loads the SSOT and provides *Store.
// Loading happens while the graph is built, so a missing or malformed SSOT
// makes App start fail.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return fx.Error(err)
	}

	return fx.Module("store",
		fx.Supply(cfg),
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
			fx.Annotate(
				filefetcher.NewFetcher(cfg.SourcePath),
				fx.As(new(config.DataFetcher)),
			),
			config.Provider(new(Tree), cfg.Section),
			New,
		),
	)
}
