package cmd

import (
	"fmt"

	"team-inventory/core/config"
	"team-inventory/core/database"
	"team-inventory/core/logger"
	"team-inventory/feature/team"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedSample bool

// migrateCmd creates or updates the database schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Creates or updates every table used by the service.
With --seed-team the demo team 1234A (Cyber Knights) and its inventory are added.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		if err := database.Migrate(db, Models()...); err != nil {
			return err
		}
		logg.Info("Schema migrated", zap.Int("tables", len(Models())))

		if !seedSample {
			return nil
		}
		t, created, err := team.SeedSample(cmd.Context(), db)
		if err != nil {
			return fmt.Errorf("failed to seed sample team: %w", err)
		}
		if created {
			logg.Info("Sample team created", zap.String("team_number", t.Number))
		} else {
			logg.Info("Sample team already present", zap.String("team_number", t.Number))
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&seedSample, "seed-team", false, "Add the demo team and inventory")
	RootCmd.AddCommand(migrateCmd)
}
