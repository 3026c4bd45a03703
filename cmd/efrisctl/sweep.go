package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/paymojammn/taxmoja-app/internal/application/fiscal"
)

var sweepOperations = map[string]string{
	"configure": fiscal.SweepConfigure,
	"adjust":    fiscal.SweepAdjust,
	"audit":     fiscal.SweepAudit,
}

func newSweepCmd(rt *runtime) *cobra.Command {
	var clientID string
	cmd := &cobra.Command{
		Use:       "sweep [configure|adjust|audit]",
		Short:     "Barrido masivo sobre el catálogo de la plataforma del cliente",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"configure", "adjust", "audit"},
		Example:   `  efrisctl sweep audit --client acme`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := rt.container(ctx)
			if err != nil {
				return err
			}
			defer deps.Close()

			sum, err := deps.Sweeps.Run(ctx, clientID, sweepOperations[args[0]])
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), sum); err != nil {
				return err
			}
			if sum.Failed > 0 {
				return errors.New(sum.Summary)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&clientID, "client", "", "identificador del cliente")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}
