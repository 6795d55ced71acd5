package main

import (
	"context"
	"errors"
	"fleet-console/internal/api"
	"fleet-console/internal/api/handlers"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web console",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		console := &handlers.Console{
			Trucks:     a.client.Trucks(),
			Drivers:    a.client.Drivers(),
			Deliveries: a.client.Deliveries(),
			Users:      a.client.Users(),
			Catalog:    a.client,
			Dashboard:  a.client,
			Reports:    a.client,
			Journal:    a.journal,
		}

		// Deliveries mounts fan out to five API calls, so the write timeout
		// leaves room for a slow upstream on top of the client timeout.
		srv := &http.Server{
			Addr:              ":" + a.cfg.Server.Port,
			Handler:           api.NewRouter(console),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      a.cfg.API.Timeout.Duration + 30*time.Second,
			IdleTimeout:       60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			a.log.Info("server listening",
				zap.String("addr", srv.Addr),
				zap.String("api", a.cfg.API.BaseURL),
				zap.String("journal", a.cfg.Journal.Driver),
			)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		a.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
