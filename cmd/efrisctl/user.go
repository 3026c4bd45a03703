package main

import (
	"github.com/spf13/cobra"

	"github.com/paymojammn/taxmoja-app/internal/application/dto"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

func newUserCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Administración de operadores",
	}

	var in dto.RegisterRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Crea un operador con password bcrypt",
		Example: `  efrisctl user create --email ops@empresa.ug --password 'secreto-largo' --name Operaciones
  efrisctl user create --email admin@empresa.ug --password 'secreto-largo' --role admin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := rt.container(ctx)
			if err != nil {
				return err
			}
			defer deps.Close()

			user, err := deps.Auth.RegisterUser(ctx, in)
			if err != nil {
				return err
			}
			rt.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("operador creado")
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
	create.Flags().StringVar(&in.Email, "email", "", "email del operador")
	create.Flags().StringVar(&in.Password, "password", "", "password (mínimo 8 caracteres)")
	create.Flags().StringVar(&in.Name, "name", "", "nombre visible")
	create.Flags().StringVar(&in.Role, "role", entity.RoleOperator, "admin u operator")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}
