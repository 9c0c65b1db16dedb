package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"azure-cost-planner/internal/api"
	"azure-cost-planner/internal/config"
	"azure-cost-planner/internal/exporter"
	"azure-cost-planner/internal/session"
	"azure-cost-planner/internal/version"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var listenAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the planner HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen-addr") {
				cfg.ListenAddr = listenAddr
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer cancel()
			return runServer(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen-addr", "", "address to listen on (overrides config)")
	return cmd
}

func runServer(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	reg := exporter.NewRegistry()
	svc := newPriceService(cfg, reg, logger)

	store, err := session.NewStore(session.StoreOptions{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		MaxAge:     cfg.Session.MaxAgeSeconds,
		Currency:   cfg.Currency,
		Hours:      cfg.DefaultHours,
		Logger:     logger,
	}, svc.Regions(), svc.VMSizes())
	if err != nil {
		return err
	}
	if cfg.Session.Secret == "" {
		logger.Warn("no session secret configured; sessions will not survive a restart")
	}

	planVersion := version.Value()
	logger.Info("starting azure cost planner",
		slog.String("version", planVersion),
		slog.String("priceSource", svc.SourceName()),
		slog.String("currency", cfg.Currency),
	)

	mux := http.NewServeMux()
	api.NewHandler(planVersion, svc, store, logger).Register(mux)
	exporter.RegisterMetrics(mux, reg)

	server := exporter.NewServer(cfg.ListenAddr, mux, logger).WithShutdownTimeout(cfg.ShutdownTimeout())
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server error", slog.String("error", err.Error()))
		return err
	}
	return nil
}
