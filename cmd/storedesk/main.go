package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hys-retail/storedesk/internal/interfaces/cli/migrate"
	"github.com/hys-retail/storedesk/internal/interfaces/cli/seed"
	"github.com/hys-retail/storedesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "storedesk",
		Short: "Storedesk - IT ticketing for retail stores",
		Long:  `Storedesk runs the store IT ticket portal API, its schema migrations and store seeding.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
