package main

import (
	"cartscan/internal/config"
	"cartscan/internal/resolver"
	"cartscan/pkg/logger"
	"cartscan/pkg/picnic"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// addCommand constructs the 'add' subcommand: a one-shot scan-to-cart run that
// takes a JSON payload as its argument and prints the committed mutation.
// Success prints the result object on stdout; failure prints a structured
// {"ok": false, ...} object on stderr and exits non-zero.
func addCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <payload>",
		Short: "Resolves one scan payload and adds the product to the cart",
		Long: `Resolves one scan payload against the catalog and commits the cart mutation.

The payload is a JSON object, e.g.:
  cartscan add '{"barcode": "8718452129911", "quantity": 2}'
  cartscan add '{"productId": "s1019822"}'
  cartscan add '{"title": "oat drink"}'`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			input, err := resolver.ParseScanInput([]byte(args[0]))
			if err != nil {
				failAdd(ctx, err)
			}

			catalog := picnic.New(&http.Client{Timeout: outboundTimeout}, picnic.Options{
				CountryCode: cfg.Picnic.CountryCode,
				BaseURL:     cfg.Picnic.BaseURL,
			})
			pipeline := resolver.NewPipeline(catalog, picnic.Credentials{
				Username: cfg.Picnic.Username,
				Password: cfg.Picnic.Password,
			})

			session := picnic.Session{AuthKey: cfg.Picnic.AuthKey}
			result, err := pipeline.Run(ctx, &session, input)
			if err != nil {
				failAdd(ctx, err)
			}

			// a fresh login happened; surface the key so the next run can skip it
			if session.AuthKey != cfg.Picnic.AuthKey {
				logger.Info(ctx, "session established, set PICNIC_AUTH_KEY to reuse it",
					zap.String("authKey", session.AuthKey))
			}

			out, err := json.Marshal(result)
			if err != nil {
				failAdd(ctx, err)
			}
			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	return cmd
}

// failAdd prints the structured failure object on stderr and exits 1.
func failAdd(ctx context.Context, err error) {
	out, mErr := json.Marshal(resolver.NewFailure(err))
	if mErr != nil {
		logger.Fatal(ctx, "could not render failure", zap.Error(err), zap.NamedError("marshal", mErr))
	}
	fmt.Fprintln(os.Stderr, string(out)) //nolint: forbidigo

	_ = logger.Get(ctx).Sync()
	os.Exit(1)
}
