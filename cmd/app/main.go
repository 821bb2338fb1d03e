package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"meatmanager/cmd"
	httpin "meatmanager/internal/adapters/in/http"
	"meatmanager/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	e, err := httpin.NewRouter(httpin.NewServer(app.HTTPHandlers(), logger), httpin.RouterConfig{
		AuthUser:     configs.AuthUser,
		AuthPassword: configs.AuthPassword,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, e, configs, logger); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// run serves HTTP until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func run(ctx context.Context, e *echo.Echo, configs cmd.Config, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.InfoContext(gctx, "HTTP server started", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
		defer cancel()

		logger.InfoContext(shutdownCtx, "HTTP server shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
