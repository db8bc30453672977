package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"eldercare-mis/config"
	"eldercare-mis/internal/model"
	"eldercare-mis/pkg/database"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:          "up",
		Short:        "Apply pending migrations",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(rootOpts)
			if err != nil {
				return err
			}
			defer e.close()

			if err := database.Migrate(e.db, e.cfg.Database.Driver, e.logger, model.All()...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", e.cfg.Database.Driver)
			return nil
		},
	})

	var steps int
	down := &cobra.Command{
		Use:          "down",
		Short:        "Roll back migrations (postgres only)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive")
			}
			e, err := openEnv(rootOpts)
			if err != nil {
				return err
			}
			defer e.close()

			if e.cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("rollback is only supported for %s, configured driver is %s", config.DriverPostgres, e.cfg.Database.Driver)
			}
			sqlDB, err := e.db.DB()
			if err != nil {
				return err
			}
			if err := database.RollbackMigrations(sqlDB, steps, e.logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d step(s)\n", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")
	cmd.AddCommand(down)

	return cmd
}
