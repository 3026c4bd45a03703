package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/paymojammn/taxmoja-app/internal/bootstrap"
	"github.com/paymojammn/taxmoja-app/pkg/config"
	"github.com/paymojammn/taxmoja-app/pkg/logger"
)

// runtime estado compartido por los subcomandos; se llena en PersistentPreRunE.
type runtime struct {
	envFile string
	cfg     *config.Config
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}
	root := &cobra.Command{
		Use:           "efrisctl",
		Short:         "Herramienta de operación del conector EFRIS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.load()
		},
	}
	root.PersistentFlags().StringVar(&rt.envFile, "env-file", "", "archivo .env a cargar antes de leer la configuración")

	root.AddCommand(
		newMigrateCmd(rt),
		newUserCmd(rt),
		newClientCmd(rt),
		newSweepCmd(rt),
	)
	return root
}

func (rt *runtime) load() error {
	if rt.envFile != "" {
		if err := godotenv.Load(rt.envFile); err != nil {
			return fmt.Errorf("cargar %s: %w", rt.envFile, err)
		}
	} else {
		_ = godotenv.Load() // .env opcional
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "efrisctl", Out: os.Stderr})
	return nil
}

// container abre la base de datos y arma los servicios; el llamador debe cerrarlo.
func (rt *runtime) container(ctx context.Context) (*bootstrap.Container, error) {
	return bootstrap.Build(ctx, rt.cfg, rt.log)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
