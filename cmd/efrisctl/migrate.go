package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paymojammn/taxmoja-app/internal/infrastructure/postgres"
)

func newMigrateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Aplica o revierte las migraciones embebidas",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := postgres.Migrate(rt.cfg.DB, args[0]); err != nil {
				return err
			}
			rt.log.Info().Str("direction", args[0]).Msg("migraciones aplicadas")
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: ok\n", args[0])
			return nil
		},
	}
}
