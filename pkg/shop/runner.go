package shop

import (
	"context"
	"log/slog"

	"github.com/mchmarny/storefront/pkg/logger"
	"github.com/mchmarny/storefront/pkg/server"
)

var (
	version = "dev"     // Set at build time via -ldflags "-X github.com/mchmarny/storefront/pkg/shop.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X github.com/mchmarny/storefront/pkg/shop.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X github.com/mchmarny/storefront/pkg/shop.date=date"
)

// Version returns the build version.
func Version() string { return version }

// Options returns the server options that mount the storefront routes,
// health check and metrics.
func (s *Storefront) Options() []server.Option {
	opts := []server.Option{
		server.WithSimpleHealth(),
		server.WithMetrics(s.registry),
	}

	for pattern, h := range s.Routes() {
		opts = append(opts, server.WithHandler(pattern, h))
	}

	return opts
}

// Run starts the storefront server and blocks until the context is canceled or an error occurs.
func (s *Storefront) Run(ctx context.Context, opt ...server.Option) error {
	logger.SetDefaultLogger("storefront", version)
	slog.Info("starting storefront", "commit", commit, "date", date,
		"nav_items", len(s.catalog.Navigation), "groups", len(s.catalog.Groups))

	opts := append(s.Options(), opt...)

	return server.New(opts...).Serve(ctx)
}
