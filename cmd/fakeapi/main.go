package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"persondesk/internal/fakeapi"
	"persondesk/internal/platform/config"
	"persondesk/internal/platform/httpserver"
	"persondesk/internal/platform/logger"
	"persondesk/internal/platform/metrics"
)

const shutdownGrace = 10 * time.Second

// main serves the in-memory backend for local development and demos.
func main() {
	var (
		configPath string
		addr       string
	)
	cmd := &cobra.Command{
		Use:           "fakeapi",
		Short:         "Serve an in-memory personal-details backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFakeAPI(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fakeapi:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.FakeAPI) error {
	log, err := logger.New(os.Stderr, cfg.LogLevel, config.DefaultLogFormat)
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	r := chi.NewRouter()
	r.Handle("/metrics", metrics.Handler(reg))
	fakeapi.New(fakeapi.NewStore(), log).Register(r)

	srv := httpserver.New(cfg.Addr, r)
	log.Info("starting fakeapi", "addr", cfg.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(ctx, srv, shutdownGrace)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("fakeapi stopped")
	return nil
}
