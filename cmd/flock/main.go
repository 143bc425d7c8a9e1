// @title Sheep Breeding Web API
// @version 1.0
// @description API JSON del frontend de cría de ovejas: lectura de ovejas, predicción de cruzas y estado de UI.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sheep-breeding-web/internal/adapters/geneapi"
	"sheep-breeding-web/internal/cli"
	"sheep-breeding-web/internal/config"
	"sheep-breeding-web/internal/platform/logger"
)

// app es el estado compartido por los subcomandos; se completa en PersistentPreRunE.
type app struct {
	cfg *config.Config
	log logger.Logger

	backendURL string
	timeout    time.Duration
	verbose    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "flock",
		Short: "Sheep breeding web frontend",
		Long: `flock sirve el frontend web de cría de ovejas y ofrece comandos
de consulta contra el backend de inferencia genética.

Sin subcomando, arranca el server (igual que "flock serve").`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if s, ok := a.log.(interface{ Sync() error }); ok {
				_ = s.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context(), 0)
		},
	}

	root.PersistentFlags().StringVar(&a.backendURL, "backend-url", "", "Backend base URL (or set BACKEND_URL)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "Backend request timeout (or set BACKEND_TIMEOUT)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newSheepCmd(a))
	root.AddCommand(newBreedCmd(a))
	root.AddCommand(newRelationshipsCmd(a))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.backendURL != "" {
		cfg.BackendURL = a.backendURL
	}
	if a.timeout > 0 {
		cfg.BackendTimeout = a.timeout
	}
	if a.verbose {
		cfg.LogLevel = logger.Debug.String()
	}
	a.cfg = cfg

	// serve loguea a stdout; los comandos de consulta a stderr.
	out := cmd.ErrOrStderr()
	if cmd.Name() == "serve" || cmd == cmd.Root() {
		out = cmd.OutOrStdout()
	}
	a.log = logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Output: out,
	})
	return nil
}

// backend arma el cliente para comandos de consulta. Sin breaker: son llamadas únicas.
func (a *app) backend() (*geneapi.Client, error) {
	return geneapi.NewClient(geneapi.Config{
		BaseURL: a.cfg.BackendURL,
		Timeout: a.cfg.BackendTimeout,
		Logger:  a.log,
	})
}

// commandContext limita cada comando de consulta al timeout del backend.
func (a *app) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, a.cfg.BackendTimeout)
}

func renderer(cmd *cobra.Command) *cli.Renderer {
	return cli.NewRenderer(cmd.OutOrStdout())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
