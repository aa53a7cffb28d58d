package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gardener/internal/httpapi"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		Long: `Запустить HTTP API Садовода.

Endpoints:
  POST /api/ask        {"question": "..."}
  GET  /api/status
  GET  /api/knowledge
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.mustResponder()
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelInfo}))
			router := httpapi.NewRouter(httpapi.New(r, logger, app.Metrics))
			srv := httpapi.NewServer(app.Config.Addr, router)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting gardener api", "addr", app.Config.Addr, "concepts", r.Knowledge().Len())
			if err := httpapi.Run(ctx, srv); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			logger.Info("gardener api stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&app.Config.Addr, "addr", app.Config.Addr, "listen address")
	return cmd
}
