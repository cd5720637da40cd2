package seed

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hys-retail/storedesk/internal/application/store/usecases"
	"github.com/hys-retail/storedesk/internal/infrastructure/database"
	"github.com/hys-retail/storedesk/internal/infrastructure/repository"
	"github.com/hys-retail/storedesk/internal/interfaces/cli/bootstrap"
	"github.com/hys-retail/storedesk/internal/shared/db"
)

var (
	env       string
	storeFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newStoresCommand())

	return cmd
}

func newStoresCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "Upsert the store table from a YAML file",
		RunE:  runStores,
	}

	cmd.Flags().StringVarP(&storeFile, "file", "f", "configs/stores.yaml", "YAML file with a top-level stores list")

	return cmd
}

type storeList struct {
	Stores []usecases.SeedStore `yaml:"stores"`
}

// parseStores reads a store list. Unknown keys are rejected so that typos do
// not silently drop fields.
func parseStores(r io.Reader) ([]usecases.SeedStore, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var list storeList
	if err := dec.Decode(&list); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("store file is empty")
		}
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	if len(list.Stores) == 0 {
		return nil, fmt.Errorf("store file has no stores")
	}
	return list.Stores, nil
}

func runStores(cmd *cobra.Command, args []string) error {
	f, err := os.Open(storeFile)
	if err != nil {
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	entries, err := parseStores(f)
	if err != nil {
		return err
	}

	_, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	conn := database.Get()
	uc := usecases.NewSeedStoresUseCase(repository.NewStoreRepository(conn), db.NewTransactionManager(conn), log)

	n, err := uc.Execute(cmd.Context(), entries)
	if err != nil {
		return err
	}

	log.Infow("stores seeded", "file", storeFile, "count", n)
	fmt.Fprintf(cmd.OutOrStdout(), "%d stores upserted\n", n)
	return nil
}
