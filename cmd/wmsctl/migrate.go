package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/wms-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones SQL pendientes",
	Long:  "Aplica en orden las migraciones embebidas que aún no figuran en schema_migrations.",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	applied, err := postgres.Migrate(ctx, e.pool)
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		e.log.Info().Msg("esquema al día, no hay migraciones pendientes")
		return nil
	}
	e.log.Info().Strs("versions", applied).Msg("migraciones aplicadas")
	return nil
}
