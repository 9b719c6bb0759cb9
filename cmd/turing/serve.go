package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/turing/internal/logging"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes POST /run, GET /runs/{runId}, GET /healthz, GET /metrics and the
OpenAPI document at GET /openapi.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		maxCells, _ := cmd.Flags().GetInt("max-tape-cells")
		redisURL, _ := cmd.Flags().GetString("redis")
		debug, _ := cmd.Flags().GetBool("debug")

		logger := logging.New(logging.LevelFor(debug))
		opts := []httpAdapter.Option{
			httpAdapter.WithMaxSteps(maxSteps),
			httpAdapter.WithMaxTapeCells(maxCells),
			httpAdapter.WithLogger(logger),
		}
		if redisURL != "" {
			store, err := redis.NewFromURL(redisURL)
			if err != nil {
				return err
			}
			defer store.Close()
			opts = append(opts, httpAdapter.WithStore(store))
		}

		ctx, done := signalContext(cmd)
		defer done()

		handler, err := httpAdapter.NewHandler(ctx, opts...)
		if err != nil {
			return err
		}
		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Fprintf(cmd.OutOrStdout(), "Starting Turing Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				srv.Close()
				return fmt.Errorf("graceful shutdown did not complete: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Turing Server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Int("max-steps", httpAdapter.DefaultMaxSteps, "Step cap for every run")
	serveCmd.Flags().Int("max-tape-cells", httpAdapter.DefaultMaxTapeCells, "Largest initial tape a request may build (0 for no limit)")
	serveCmd.Flags().String("redis", "", "Record runs in Redis (redis://host:port/db)")
	serveCmd.Flags().Bool("debug", false, "Enable debug logging")
}
