package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcastillo/pliego-compliance/internal/compliance"
	"github.com/rcastillo/pliego-compliance/internal/config"
	"github.com/rcastillo/pliego-compliance/internal/ingestion"
	"github.com/rcastillo/pliego-compliance/internal/observability"
	"github.com/rcastillo/pliego-compliance/internal/types"
)

var (
	evaluateSheetPath     string
	evaluateInventoryPath string
	evaluateWorkers       int
	evaluateOutputJSON    bool
	evaluateVerbose       bool
	evaluateConfigPath    string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate an inventory CSV against a pliego document",
	Long:  `Run an offline batch evaluation: parse an inventory spreadsheet export, validate every record against the given requirement sheet and print per-record verdicts plus batch statistics.`,
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateSheetPath, "sheet", "", "Path to the pliego JSON document")
	evaluateCmd.Flags().StringVar(&evaluateInventoryPath, "inventory", "", "Path to the inventory CSV export")
	evaluateCmd.Flags().IntVar(&evaluateWorkers, "workers", 4, "Evaluation worker count")
	evaluateCmd.Flags().BoolVar(&evaluateOutputJSON, "json", false, "Print the full result as JSON")
	evaluateCmd.Flags().BoolVar(&evaluateVerbose, "verbose", false, "Print boxed statistics and failing records")
	evaluateCmd.Flags().StringVar(&evaluateConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	if evaluateConfigPath != "" {
		cfg, err := config.LoadConfig(evaluateConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if evaluateSheetPath == "" {
			evaluateSheetPath = cfg.Sheet
		}
		if evaluateInventoryPath == "" {
			evaluateInventoryPath = cfg.Inventory
		}
		if cfg.Workers > 0 {
			evaluateWorkers = cfg.Workers
		}
		if cfg.Verbose {
			evaluateVerbose = true
		}
	}
	if evaluateSheetPath == "" {
		return fmt.Errorf("--sheet is required")
	}
	if evaluateInventoryPath == "" {
		return fmt.Errorf("--inventory is required")
	}

	rules, err := loadRulesFromFile(evaluateSheetPath)
	if err != nil {
		return err
	}

	checksum, err := ingestion.ChecksumFile(evaluateInventoryPath)
	if err != nil {
		return err
	}
	log.Printf("Inventory %s (xxhash %s)", evaluateInventoryPath, checksum)

	f, err := os.Open(evaluateInventoryPath)
	if err != nil {
		return fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := ingestion.ReadInventoryCSV(f)
	if err != nil {
		return fmt.Errorf("failed to parse inventory: %w", err)
	}
	log.Printf("Parsed %d inventory records", len(records))

	eval := compliance.NewEvaluator(nil, nil)
	result, err := ingestion.EvaluateBatch(context.Background(), eval, rules, records, evaluateWorkers)
	if err != nil {
		return err
	}

	if evaluateOutputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if evaluateVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintBatchStatistics(&result.Statistics)
		printer.PrintFailingVerdicts(result.Verdicts)
		return nil
	}

	printSummary(result)
	return nil
}

func printSummary(result *ingestion.BatchResult) {
	stats := result.Statistics
	fmt.Printf("Records:     %d\n", stats.Total)
	fmt.Printf("Passed:      %d (%d%%)\n", stats.PassCount, stats.PassRatePercent)
	fmt.Printf("Failed:      %d\n", stats.FailCount)
	fmt.Printf("Warnings:    %d\n", stats.WarnCount)
	fmt.Printf("Avg score:   %d\n", stats.AverageScore)
	fmt.Printf("Score bands: excellent=%d good=%d fair=%d poor=%d\n",
		stats.ScoreBands.Excellent, stats.ScoreBands.Good, stats.ScoreBands.Fair, stats.ScoreBands.Poor)

	if len(stats.ErrorCountsByDimension) > 0 {
		fmt.Println("Errors by dimension:")
		for _, dim := range types.AllDimensions {
			if count := stats.ErrorCountsByDimension[dim]; count > 0 {
				fmt.Printf("  %-18s %d\n", dim, count)
			}
		}
	}

	for _, v := range result.Verdicts {
		if v.PassedOverall && len(v.Warnings) == 0 {
			continue
		}
		fmt.Printf("record %s: score=%d passed=%t\n", v.RecordID, v.Score, v.PassedOverall)
		for _, issue := range v.Errors {
			fmt.Printf("  error   [%s] %s\n", issue.Dimension, issue.Message)
		}
		for _, issue := range v.Warnings {
			fmt.Printf("  warning [%s] %s\n", issue.Dimension, issue.Message)
		}
	}
}
