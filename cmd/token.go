package main

import (
	"cartscan/internal/config"
	"cartscan/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that generates a signed HS256
// device token for a given device name and TTL using the configured secret.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a device token for the scan endpoint",
		Run: func(cmd *cobra.Command, args []string) {
			device, _ := cmd.Flags().GetString("device")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			if cfg.Ingest.DeviceTokenSecret == "" {
				logger.Fatal(context.Background(),
					"no device token secret configured, set INGEST_DEVICE_TOKEN_SECRET")
			}

			claims := jwt.RegisteredClaims{
				Subject:   device,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				NotBefore: jwt.NewNumericDate(time.Now()),
			}
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
			signed, err := token.SignedString([]byte(cfg.Ingest.DeviceTokenSecret))
			if err != nil {
				logger.Fatal(context.Background(), "could not sign device token", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("device", "", "Device name (e.g., kitchen-scanner)")
	cmd.Flags().Duration("ttl", 30*24*time.Hour, "Token TTL (e.g., 24h, 720h)")
	_ = cmd.MarkFlagRequired("device")

	return cmd
}
