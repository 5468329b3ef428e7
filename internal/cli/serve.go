package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthur-debert/docprint/pkg/config"
	"github.com/arthur-debert/docprint/pkg/errors"
	"github.com/arthur-debert/docprint/pkg/logging"
	"github.com/arthur-debert/docprint/pkg/server"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: MsgServeShort,
		Long:  MsgServeLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{Path: root.configPath})
			if err != nil {
				return err
			}

			theme, err := loadTheme(cfg.Theme)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, addr, server.New(*cfg, theme))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", MsgFlagAddr)

	return cmd
}

// serve runs handler on addr until ctx is done, then shuts down gracefully
func serve(ctx context.Context, addr string, handler http.Handler) error {
	logger := logging.GetLogger("cli")

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("Starting server")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, errors.ErrInternal, "server failed").WithDetail("addr", addr)
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "server shutdown failed")
	}
	return nil
}
