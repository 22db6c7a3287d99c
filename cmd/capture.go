package main

import (
	"cartscan/internal/capture"
	"cartscan/internal/config"
	"cartscan/pkg/logger"
	"context"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// captureCommand constructs the 'capture' subcommand: a client-side loop that
// decodes barcodes from a camera stream and submits them to the ingestion
// endpoint.
func captureCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Decodes barcodes from a camera stream and submits them for ingestion",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Capture.StreamURL == "" {
				logger.Fatal(ctx, "no capture stream configured, set CAPTURE_STREAM_URL")
			}

			// streaming reads must not time out, the source blocks between frames
			source, err := capture.OpenMJPEG(ctx, &http.Client{}, cfg.Capture.StreamURL)
			if err != nil {
				logger.Fatal(ctx, "could not open capture stream", zap.Error(err))
			}

			scanURL := strings.TrimRight(cfg.Capture.IngestURL, "/") + "/scan"
			submitter := capture.NewHTTPSubmitter(
				&http.Client{Timeout: outboundTimeout},
				scanURL,
				cfg.Capture.Token)

			loop := capture.NewLoop(source, capture.NewZXingDecoder(), submitter, capture.Options{
				TickInterval: cfg.Capture.TickInterval,
				MaxInFlight:  cfg.Capture.MaxInFlight,
				SeenTTL:      cfg.Capture.SeenTTL,
				SeenCapacity: cfg.Capture.SeenCapacity,
			})

			logger.Info(ctx, "capture loop starting",
				zap.String("stream", cfg.Capture.StreamURL),
				zap.String("ingest", scanURL))
			if err := loop.Run(ctx); err != nil {
				logger.Fatal(ctx, "capture loop failed", zap.Error(err))
			}
		},
	}

	return cmd
}
