package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcastillo/pliego-compliance/internal/ruleset"
	"github.com/rcastillo/pliego-compliance/internal/types"
)

var sheetValidateFile string

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Requirement sheet utilities",
}

var sheetValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a pliego JSON document against the schema",
	RunE:  runSheetValidate,
}

func init() {
	sheetValidateCmd.Flags().StringVar(&sheetValidateFile, "file", "", "Path to the pliego JSON document")
	sheetCmd.AddCommand(sheetValidateCmd)
	rootCmd.AddCommand(sheetCmd)
}

func runSheetValidate(_ *cobra.Command, _ []string) error {
	if sheetValidateFile == "" {
		return fmt.Errorf("--file is required")
	}
	content, err := os.ReadFile(sheetValidateFile)
	if err != nil {
		return fmt.Errorf("failed to read sheet file: %w", err)
	}
	if err := ruleset.ValidatePliegoJSON(content); err != nil {
		return err
	}
	fmt.Printf("%s: valid\n", sheetValidateFile)
	return nil
}

// loadRulesFromFile reads a pliego JSON document, runs it through schema
// validation and flattens it into the rule set the evaluator consumes.
func loadRulesFromFile(path string) (*types.Rules, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet file: %w", err)
	}
	if err := ruleset.ValidatePliegoJSON(content); err != nil {
		return nil, err
	}
	var doc types.PliegoDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sheet document: %w", err)
	}
	return ruleset.Transform(&types.RequirementSheet{Document: &doc})
}
