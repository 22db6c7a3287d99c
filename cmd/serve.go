package main

import (
	"cartscan/internal/api"
	"cartscan/internal/api/handler"
	"cartscan/internal/config"
	"cartscan/internal/ingest"
	"cartscan/internal/resolver"
	"cartscan/internal/tasklist"
	"cartscan/internal/worker"
	"cartscan/pkg/foodfacts"
	"cartscan/pkg/gtasks"
	"cartscan/pkg/logger"
	"cartscan/pkg/metrics"
	"cartscan/pkg/picnic"
	"cartscan/pkg/ttlset"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// outboundTimeout bounds requests to the catalog and lookup APIs.
const outboundTimeout = 30 * time.Second

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupTasklist wires the Google Tasks journal when OAuth credentials are
// configured; otherwise it returns nil and journaling is disabled.
func setupTasklist(ctx context.Context, cfg *config.Config) *tasklist.Service {
	if cfg.Tasks.ClientID == "" || cfg.Tasks.ClientSecret == "" || cfg.Tasks.RefreshToken == "" {
		logger.Info(ctx, "google tasks journal disabled, no oauth credentials configured")

		return nil
	}

	backend := gtasks.New(
		gtasks.OAuthClient(ctx, cfg.Tasks.ClientID, cfg.Tasks.ClientSecret, cfg.Tasks.RefreshToken),
		"")

	return tasklist.New(backend, cfg.Tasks.TasklistID, cfg.Tasks.TasklistTitle)
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server and background cart-sync workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := api.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			ingestMetrics, err := metrics.NewIngest(mp.Meter("cartscan"))
			if err != nil {
				logger.Fatal(ctx, "could not create ingest metrics", zap.Error(err))
			}

			picnicEnabled := cfg.PicnicEnabled()

			// background cart-sync workers
			var stopWorkers func(ctx context.Context)
			if picnicEnabled {
				catalog := picnic.New(&http.Client{Timeout: outboundTimeout}, picnic.Options{
					CountryCode: cfg.Picnic.CountryCode,
					BaseURL:     cfg.Picnic.BaseURL,
				})
				pipeline := resolver.NewPipeline(catalog, picnic.Credentials{
					Username: cfg.Picnic.Username,
					Password: cfg.Picnic.Password,
				})
				cartSync := worker.NewCartSyncWorker(pipeline, strg, ingestMetrics, cfg.Worker.MaxAttempts)
				if cfg.Picnic.AuthKey != "" {
					cartSync.SeedSession(cfg.Picnic.AuthKey)
				}

				riverClient, err := worker.Start(ctx, strg.Pool, cartSync, cfg.Worker.MaxWorkers)
				if err != nil {
					logger.Fatal(ctx, "could not start workers", zap.Error(err))
				}
				stopWorkers = func(ctx context.Context) {
					logger.Info(ctx, "stopping workers...")
					if err := riverClient.Stop(ctx); err != nil {
						logger.Error(ctx, "could not stop workers", zap.Error(err))
					}
				}
			} else {
				logger.Info(ctx, "cart sync disabled, no catalog credentials configured")
			}

			tasks := setupTasklist(ctx, cfg)

			var journal ingest.Journal
			if tasks != nil {
				journal = tasks
			}
			ingestSvc := ingest.New(strg,
				ttlset.New(cfg.Ingest.DedupeWindow, cfg.Ingest.DedupeCapacity),
				foodfacts.New(&http.Client{Timeout: outboundTimeout}, ""),
				journal,
				ingestMetrics,
				ingest.Options{
					RecentLimit:     cfg.Ingest.RecentLimit,
					MaxSyncAttempts: cfg.Worker.MaxAttempts,
					SyncWindow:      cfg.Worker.SyncWindow,
					CartSyncEnabled: picnicEnabled,
				})

			deps := api.Deps{
				Ingest:        ingestSvc,
				Status:        handler.NewScannerStatus(),
				PicnicEnabled: picnicEnabled,
			}
			if tasks != nil {
				deps.Tasks = tasks
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if stopWorkers != nil {
				stopWorkers(shutdownCtx)
			}
		},
	}

	return cmd
}
