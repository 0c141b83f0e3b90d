package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"team-inventory/core/config"
	"team-inventory/core/database"
	"team-inventory/core/lock"
	"team-inventory/core/logger"
	"team-inventory/core/reconcile"
	"team-inventory/feature/bom"
	"team-inventory/feature/team"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	bomTeam       string
	bomBuildName  string
	bomSimulate   bool
	bomJSONOutput bool
)

// bomCmd reconciles a BOM file from the command line.
var bomCmd = &cobra.Command{
	Use:   "bom <file.csv>",
	Short: "Reconcile a BOM CSV against a team's inventory",
	Long: `Parses a BOM CSV and reconciles it against the inventory of --team.

Examples:
  # Dry run, nothing is deducted
  bom robot.csv --team 1234A --simulate

  # Deduct stock and record the build
  bom robot.csv --team 1234A --name "Drive Base"`,
	Args: cobra.ExactArgs(1),
	RunE: runBOM,
}

func init() {
	bomCmd.Flags().StringVar(&bomTeam, "team", "", "Team number (required)")
	bomCmd.Flags().StringVar(&bomBuildName, "name", "", "Build name")
	bomCmd.Flags().BoolVar(&bomSimulate, "simulate", false, "Report only, leave stock and spend untouched")
	bomCmd.Flags().BoolVar(&bomJSONOutput, "json", false, "Print the full report as JSON")
	_ = bomCmd.MarkFlagRequired("team")
	RootCmd.AddCommand(bomCmd)
}

func runBOM(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	startTime := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read BOM: %w", err)
	}
	lines, err := bom.ParseCSV(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}

	teams := team.NewService(team.NewRepository(db), logg)
	teamID, err := teams.ResolveTeam(ctx, bomTeam)
	if err != nil {
		return err
	}

	locker, closeLocker, err := lock.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize BOM lock: %w", err)
	}
	defer closeLocker()

	svc := bom.NewService(bom.Deps{
		DB:     db,
		Spend:  teams,
		Locker: locker,
		Logger: logg,
	})
	report, err := svc.Upload(ctx, teamID, bomTeam, bom.UploadRequest{
		BuildName: bomBuildName,
		Simulate:  bomSimulate,
		Lines:     lines,
		RawCSV:    raw,
	})
	if err != nil {
		return err
	}

	if bomJSONOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printReport(report)
	}

	logg.Info("BOM reconciled",
		zap.Uint("build_id", report.BuildID),
		zap.Bool("simulation", report.Simulation),
		zap.Duration("execution_time", time.Since(startTime)),
	)
	return nil
}

func printReport(report *reconcile.Report) {
	fmt.Printf("\n=== Build #%d ===\n", report.BuildID)
	for _, r := range report.Results {
		fmt.Printf("%-12s %-32s need %-4d have %-4d %s\n", r.PartNumber, r.Name, r.Needed, r.Available, r.Status)
	}
	s := report.Summary
	fmt.Printf("\nParts: %d  OK: %d  Low: %d  Insufficient: %d  Missing: %d\n", s.TotalParts, s.OK, s.LowStock, s.Insufficient, s.Missing)
	fmt.Printf("Total Cost: %s\n", s.TotalCost.StringFixed(2))
	if report.Simulation {
		fmt.Println("Simulation: stock and spend unchanged")
	}
}
