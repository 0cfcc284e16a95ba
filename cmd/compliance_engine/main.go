// Package main provides the entry point for the requirement-sheet
// compliance engine CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compliance_engine",
	Short: "Requirement-sheet compliance engine",
	Long:  "Validates field equipment inventories against versioned requirement sheets (pliegos), producing per-record verdicts, weighted compliance scores and batch statistics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
