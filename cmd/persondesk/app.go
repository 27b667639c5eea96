package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"persondesk/internal/platform/config"
	"persondesk/internal/platform/httpserver"
	"persondesk/internal/platform/logger"
	"persondesk/internal/platform/metrics"
	"persondesk/internal/records/adapters/rest"
	recmetrics "persondesk/internal/records/metrics"
	"persondesk/internal/records/service"
	"persondesk/internal/records/state"
)

const shutdownGrace = 5 * time.Second

type flags struct {
	configPath  string
	apiURL      string
	logLevel    string
	metricsAddr string
}

// app holds the dependencies shared by every subcommand.
type app struct {
	cfg      config.Client
	log      *slog.Logger
	logSink  io.Closer
	registry *prometheus.Registry
	store    *state.Store
	svc      *service.Service
}

// newApp resolves configuration and wires the service. Interactive sessions
// never log to the terminal: they use the configured log file or nothing.
func newApp(cmd *cobra.Command, f *flags, interactive bool) (*app, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = f.apiURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}

	var sink io.WriteCloser = nopWriteCloser{cmd.ErrOrStderr()}
	if interactive || cfg.LogFile != "" {
		if sink, err = logger.OpenFile(cfg.LogFile); err != nil {
			return nil, err
		}
	}
	log, err := logger.New(sink, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		_ = sink.Close()
		return nil, err
	}

	reg := metrics.NewRegistry()
	client := rest.New(cfg.APIURL,
		rest.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		rest.WithLogger(log),
	)
	store := state.NewStore(state.State{})
	svc := service.New(client, store,
		service.WithLogger(log),
		service.WithMetrics(recmetrics.New(reg)),
	)

	return &app{
		cfg:      cfg,
		log:      log,
		logSink:  sink,
		registry: reg,
		store:    store,
		svc:      svc,
	}, nil
}

func (a *app) Close() error {
	return a.logSink.Close()
}

// run executes fn, serving /metrics alongside it when a metrics address is
// configured. The metrics server stops once fn returns.
func (a *app) run(ctx context.Context, fn func(context.Context) error) error {
	if a.cfg.MetricsAddr == "" {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(a.registry))
	srv := httpserver.New(a.cfg.MetricsAddr, mux)
	a.log.Info("serving metrics", "addr", a.cfg.MetricsAddr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(gctx, srv, shutdownGrace)
	})
	g.Go(func() error {
		defer cancel()
		return fn(gctx)
	})
	return g.Wait()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
