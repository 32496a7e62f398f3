package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mchmarny/storefront/pkg/logger"
	"github.com/mchmarny/storefront/pkg/server"
	"github.com/mchmarny/storefront/pkg/shop"
)

var (
	port     = flag.Int("port", server.DefaultPort, "Port to run the server on")
	catalog  = flag.String("catalog", "", "Path to a JSON catalog; the built-in sample is used when empty")
	logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
)

func main() {
	flag.Parse()

	if *logLevel != "" {
		os.Setenv(logger.EnvVarLogLevel, *logLevel)
	}

	c := shop.SampleCatalog()
	if *catalog != "" {
		loaded, err := shop.LoadCatalog(*catalog)
		if err != nil {
			slog.Error("failed to load catalog", "path", *catalog, "error", err)
			os.Exit(1)
		}
		c = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := shop.New(c).Run(ctx, server.WithPort(*port)); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
