package rewrite

import (
	"log/slog"

	"github.com/0xalexb/ssot-embed/marker"
	"github.com/0xalexb/ssot-embed/store"

	"go.uber.org/fx"
)

// NewModule creates an Fx module providing *marker.Resolver and *Rewriter.
// It expects *store.Store and *slog.Logger in the container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	return fx.Module("rewrite",
		fx.Provide(
			func(s *store.Store) *marker.Resolver {
				return marker.NewResolver(s)
			},
			func(resolver *marker.Resolver, logger *slog.Logger) (*Rewriter, error) {
				return New(resolver, logger.With(slog.String("component", "rewrite")), cfg)
			},
		),
	)
}
