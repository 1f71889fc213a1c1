package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/wms-api/internal/application/setup"
	"github.com/jhoicas/wms-api/internal/infrastructure/postgres"
)

var seedDemo bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga roles base y el usuario administrador",
	Long: `Crea los roles administrador, supervisor, operador y calidad, y el usuario
administrador definido en SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
Con --demo agrega un cuarto frío, una bodega seca, ubicaciones y productos de ejemplo.
Los registros existentes no se modifican.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedDemo, "demo", false, "cargar bodegas, ubicaciones y productos de ejemplo")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	seeder := setup.NewSeeder(
		postgres.NewRoleRepository(e.pool),
		postgres.NewUserRepository(e.pool),
		postgres.NewSubWarehouseRepository(e.pool),
		postgres.NewLocationRepository(e.pool),
		postgres.NewProductRepository(e.pool),
	)
	rep, err := seeder.Run(ctx, setup.Options{
		AdminName:     e.cfg.Seed.AdminName,
		AdminEmail:    e.cfg.Seed.AdminEmail,
		AdminPassword: e.cfg.Seed.AdminPassword,
		Demo:          seedDemo,
	})
	if err != nil {
		return err
	}
	e.log.Info().
		Strs("roles", rep.RolesCreated).
		Bool("admin_created", rep.AdminCreated).
		Int("warehouses", rep.DemoWarehouses).
		Int("locations", rep.DemoLocations).
		Int("products", rep.DemoProducts).
		Msg("datos iniciales cargados")
	return nil
}
