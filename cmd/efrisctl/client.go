package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

// clientFile formato del archivo JSON de alta de un cliente.
type clientFile struct {
	ClientID     string                  `json:"client_id"`
	CompanyName  string                  `json:"company_name"`
	Platform     entity.Platform         `json:"platform"`
	Gateway      entity.GatewayAuth      `json:"gateway"`
	Fields       entity.FieldMapping     `json:"fields"`
	Stock        entity.StockDefaults    `json:"stock"`
	Settings     entity.PlatformSettings `json:"settings"`
	StrictTaxPin bool                    `json:"strict_tax_pin"`
}

// clientSummary salida de list; nunca incluye secretos.
type clientSummary struct {
	ClientID    string `json:"client_id"`
	CompanyName string `json:"company_name"`
	Platform    string `json:"platform"`
	Active      bool   `json:"active"`
	AuthStatus  string `json:"auth_status"`
}

func newClientCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Configuración de clientes (ConnectorConfig)",
	}

	var file string
	add := &cobra.Command{
		Use:     "add",
		Short:   "Registra un cliente desde un archivo JSON",
		Example: `  efrisctl client add --file acme.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var in clientFile
			if err := json.Unmarshal(raw, &in); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			ctx := cmd.Context()
			deps, err := rt.container(ctx)
			if err != nil {
				return err
			}
			defer deps.Close()

			cfg := &entity.ConnectorConfig{
				ClientID:     in.ClientID,
				CompanyName:  in.CompanyName,
				Platform:     in.Platform,
				Gateway:      in.Gateway,
				Fields:       in.Fields,
				Stock:        in.Stock,
				Settings:     in.Settings,
				StrictTaxPin: in.StrictTaxPin,
				Active:       true,
			}
			if err := deps.Clients.Create(ctx, cfg); err != nil {
				return err
			}
			rt.log.Info().Str("client_id", cfg.ClientID).Str("platform", string(cfg.Platform)).Msg("cliente registrado")
			return printJSON(cmd.OutOrStdout(), summarize(cfg))
		},
	}
	add.Flags().StringVar(&file, "file", "", "ruta del archivo JSON")
	_ = add.MarkFlagRequired("file")

	var platform string
	list := &cobra.Command{
		Use:   "list",
		Short: "Lista los clientes registrados",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := rt.container(ctx)
			if err != nil {
				return err
			}
			defer deps.Close()

			cfgs, err := deps.Clients.List(ctx, entity.Platform(platform))
			if err != nil {
				return err
			}
			out := make([]clientSummary, 0, len(cfgs))
			for _, c := range cfgs {
				out = append(out, summarize(c))
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	list.Flags().StringVar(&platform, "platform", "", "filtra por plataforma (dear, xero, quickbooks, ordereasy)")

	cmd.AddCommand(add, list)
	return cmd
}

func summarize(c *entity.ConnectorConfig) clientSummary {
	return clientSummary{
		ClientID:    c.ClientID,
		CompanyName: c.CompanyName,
		Platform:    string(c.Platform),
		Active:      c.Active,
		AuthStatus:  c.CredState.AuthStatus(),
	}
}
