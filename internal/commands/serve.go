package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"portal_pedidos/internal/adapter/http/handlers"
	"portal_pedidos/internal/adapter/http/routes"
	"portal_pedidos/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides HTTP_ADDRESS)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if app.cfg.App.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(routes.Handlers{
		Orders:       handlers.NewOrderHandler(app.orders, app.log),
		Installments: handlers.NewInstallmentHandler(app.ledger, app.proofs, app.log),
		Customers:    handlers.NewCustomerHandler(app.delinquency, app.log),
	}, app.log)

	addr := app.cfg.HTTP.Address
	if flag, _ := cmd.Flags().GetString("addr"); flag != "" {
		addr = flag
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.log.Info("[http][server] listening", zap.String("addr", addr), zap.String("storage", app.cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			app.log.Error("[http][server] failed to start", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	app.log.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
