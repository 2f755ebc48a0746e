// puzzlectl manages the puzzle dataset: listing, importing, exporting and
// seeding puzzles against the configured database.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wikiguess/internal/config"
	"wikiguess/internal/database"
	"wikiguess/internal/repository"
	"wikiguess/internal/service"
)

func main() {
	log.SetFlags(0)
	cobra.CheckErr(newCmd().Execute())
}

func newCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WIKIGUESS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "puzzlectl",
		Short:         "Manage the daily puzzle dataset",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	fs := cmd.PersistentFlags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.String("db-type", "", "database type: sqlite, postgres or mysql (env: WIKIGUESS_DB_TYPE)")
	fs.String("db-path", "", "sqlite database file (env: WIKIGUESS_DB_PATH)")
	fs.String("db-url", "", "postgres/mysql connection string (env: WIKIGUESS_DB_URL)")
	fs.String("migrations", "", "migrations directory (env: WIKIGUESS_MIGRATIONS)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.AddCommand(newListCmd(fs))
	cmd.AddCommand(newImportCmd(fs))
	cmd.AddCommand(newExportCmd(fs))
	cmd.AddCommand(newSeedCmd(fs))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	return cmd
}

// openDataset builds the dataset service against the configured database,
// with flag values overriding environment configuration
func openDataset(fs *pflag.FlagSet) (*service.DatasetService, func() error, error) {
	cfg := config.Load()

	if s, _ := fs.GetString("db-type"); s != "" {
		cfg.DatabaseType = s
	}
	if s, _ := fs.GetString("db-path"); s != "" {
		cfg.DatabasePath = s
	}
	if s, _ := fs.GetString("db-url"); s != "" {
		cfg.DatabaseURL = s
	}
	if s, _ := fs.GetString("migrations"); s != "" {
		cfg.MigrationsPath = s
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	puzzles := repository.NewPuzzleRepository(db)
	return service.NewDatasetService(db, puzzles), db.Close, nil
}

func newListCmd(fs *pflag.FlagSet) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all puzzles in the database",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, closeDB, err := openDataset(fs)
			if err != nil {
				return err
			}
			defer closeDB()

			puzzles, err := dataset.List()
			if err != nil {
				return err
			}

			for _, p := range puzzles {
				fmt.Printf("%s  %-40s  %d sections\n", p.Date, p.Answer, len(p.Sections))
			}
			fmt.Printf("%d puzzles\n", len(puzzles))
			return nil
		},
	}
}

func newImportCmd(fs *pflag.FlagSet) *cobra.Command {
	var input string
	var clear bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import puzzles from a JSON dataset file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, closeDB, err := openDataset(fs)
			if err != nil {
				return err
			}
			defer closeDB()

			count, err := dataset.Import(input, clear)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d puzzles from %s\n", count, input)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "./data/puzzles.json", "dataset file to import")
	cmd.Flags().BoolVar(&clear, "clear", false, "delete existing puzzles before importing")
	return cmd
}

func newExportCmd(fs *pflag.FlagSet) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all puzzles to a JSON dataset file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, closeDB, err := openDataset(fs)
			if err != nil {
				return err
			}
			defer closeDB()

			count, err := dataset.Export(output)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d puzzles to %s\n", count, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "./puzzles-export.json", "file to write")
	return cmd
}

func newSeedCmd(fs *pflag.FlagSet) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import the dataset only if the database has no puzzles",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, closeDB, err := openDataset(fs)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := dataset.Seed(input); err != nil {
				return err
			}
			fmt.Println("Seed complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "./data/puzzles.json", "dataset file to seed from")
	return cmd
}
