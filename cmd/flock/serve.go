package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	pg "sheep-breeding-web/internal/adapters/storage/postgres"
	"sheep-breeding-web/internal/platform/metrics"
	"sheep-breeding-web/internal/router"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web frontend",
		Long: `Arranca el server HTTP: páginas HTML, API JSON en /api,
métricas en /metrics y documentación en /swagger/.

Si DB_DSN está seteado, el estado de UI se guarda en Postgres.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context(), port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (or set PORT, default 3000)")
	return cmd
}

func (a *app) serve(ctx context.Context, port int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if port > 0 {
		a.cfg.Port = port
	}

	db := a.openDB()
	if db != nil {
		defer db.Close()
	}

	handler, err := router.NewRouter(router.Options{
		BackendURL:     a.cfg.BackendURL,
		BackendTimeout: a.cfg.BackendTimeout,
		BreakerEnabled: a.cfg.Breaker(),
		DB:             db,
		Logger:         a.log,
		Metrics:        metrics.NewCollector("flock"),
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// una página puede esperar hasta 4 llamadas al backend (familia)
		WriteTimeout: 4*a.cfg.BackendTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", map[string]any{
			"addr":        srv.Addr,
			"backend_url": a.cfg.BackendURL,
			"ui_store":    uiStoreName(db),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", map[string]any{"timeout": a.cfg.ShutdownTimeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openDB: sin DSN => nil (in-memory). Con DSN y Postgres caído => se sigue en memoria.
func (a *app) openDB() *sql.DB {
	if a.cfg.DBDSN == "" {
		return nil
	}
	db, err := pg.Open(a.cfg.DBDSN)
	if err != nil {
		a.log.Warn("postgres unavailable, ui state kept in memory", map[string]any{"error": err})
		return nil
	}
	return db
}

func uiStoreName(db *sql.DB) string {
	if db != nil {
		return "postgres"
	}
	return "memory"
}
