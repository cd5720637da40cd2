package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/hys-retail/storedesk/internal/infrastructure/database"
	"github.com/hys-retail/storedesk/internal/infrastructure/migration"
	"github.com/hys-retail/storedesk/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/hys-retail/storedesk/internal/interfaces/http"
	"github.com/hys-retail/storedesk/internal/shared/goroutine"
)

const (
	shutdownTimeout     = 30 * time.Second
	defaultDrainTimeout = 10 * time.Second
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the storedesk HTTP API with the configuration for the given environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Create or extend the schema on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if autoMigrate {
		if cfg.Server.IsProduction() {
			log.Warnw("auto-migration is enabled in production")
		}
		if err := migration.AutoMigrate(cmd.Context(), database.Get(), log); err != nil {
			return err
		}
	}

	router, err := httpRouter.NewRouter(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "address", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serveErr:
		log.Errorw("server failed", "error", err)
		_ = router.Shutdown(context.Background())
		return err
	}

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	// In-flight requests are done; flush queued notifications.
	drain := defaultDrainTimeout
	if ms := cfg.Notification.DrainTimeoutMs; ms > 0 {
		drain = time.Duration(ms) * time.Millisecond
	}
	drainCtx, drainCancel := context.WithTimeout(context.Background(), drain)
	defer drainCancel()
	if err := router.Shutdown(drainCtx); err != nil {
		log.Warnw("notification queue drain incomplete", "error", err)
	}

	log.Infow("server exited gracefully")
	return nil
}
