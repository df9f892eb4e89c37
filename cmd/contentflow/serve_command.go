package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contentflow/internal/routes"

	"github.com/spf13/cobra"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := ctx.open(sigCtx)
			if err != nil {
				return err
			}
			defer rt.close()

			if rt.cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is required")
			}

			app := routes.NewApp(rt.svc, routes.Options{
				JWTSecret:      rt.cfg.JWTSecret,
				CORSOrigins:    rt.cfg.CORSOrigins,
				RequestTimeout: rt.cfg.RequestTimeout,
				Log:            rt.log,
			})

			errCh := make(chan error, 1)
			go func() {
				rt.log.Info().Str("port", rt.cfg.Port).Msg("listening")
				errCh <- app.Listen(":" + rt.cfg.Port)
			}()

			select {
			case err := <-errCh:
				return err
			case <-sigCtx.Done():
			}

			rt.log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.ShutdownWithContext(shutdownCtx)
		},
	}
}
