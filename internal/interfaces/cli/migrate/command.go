package migrate

import (
	"github.com/spf13/cobra"

	"github.com/hys-retail/storedesk/internal/infrastructure/database"
	"github.com/hys-retail/storedesk/internal/infrastructure/migration"
	"github.com/hys-retail/storedesk/internal/interfaces/cli/bootstrap"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the database schema.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or extend all tables",
		Long:  `Bring the schema up to date with the persistence models. Columns are never dropped.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running migrations", "environment", env)
	return migration.AutoMigrate(cmd.Context(), database.Get(), log)
}
