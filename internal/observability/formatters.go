// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBatchStatistics outputs a human-readable summary of a batch run.
func (p *Printer) PrintBatchStatistics(stats *types.BatchStatistics) {
	if stats == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Records:   %d\n", stats.Total))
	sb.WriteString(fmt.Sprintf("Passed:    %d (%d%%)\n", stats.PassCount, stats.PassRatePercent))
	sb.WriteString(fmt.Sprintf("Failed:    %d\n", stats.FailCount))
	sb.WriteString(fmt.Sprintf("Warnings:  %d\n", stats.WarnCount))
	sb.WriteString(fmt.Sprintf("Avg score: %d\n", stats.AverageScore))
	sb.WriteString("\n")

	sb.WriteString("Score bands:\n")
	sb.WriteString(fmt.Sprintf("  excellent (90-100): %d\n", stats.ScoreBands.Excellent))
	sb.WriteString(fmt.Sprintf("  good      (70-89):  %d\n", stats.ScoreBands.Good))
	sb.WriteString(fmt.Sprintf("  fair      (50-69):  %d\n", stats.ScoreBands.Fair))
	sb.WriteString(fmt.Sprintf("  poor      (0-49):   %d\n", stats.ScoreBands.Poor))

	if len(stats.ErrorCountsByDimension) > 0 {
		sb.WriteString("\nErrors by dimension:\n")
		for _, dim := range types.AllDimensions {
			if count := stats.ErrorCountsByDimension[dim]; count > 0 {
				sb.WriteString(fmt.Sprintf("  %-13s %d\n", dim, count))
			}
		}
	}

	p.printBox("BATCH STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFailingVerdicts outputs the first few failing records with their issues.
func (p *Printer) PrintFailingVerdicts(verdicts []types.RecordVerdict) {
	failing := make([]types.RecordVerdict, 0, len(verdicts))
	for _, v := range verdicts {
		if !v.PassedOverall {
			failing = append(failing, v)
		}
	}
	if len(failing) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Failing records: %d\n\n", len(failing)))

	count := min(len(failing), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := failing[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (score %d)\n", i+1, v.RecordID, v.Score))
		for _, issue := range v.Errors {
			msg := issue.Message
			if len(msg) > 44 {
				msg = msg[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", issue.Dimension, msg))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(failing) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more failing records", len(failing)-maxItemsToShow))
	}

	p.printBox("FAILING RECORDS", sb.String())
}

// PrintRecordVerdict outputs every dimension verdict for a single record.
func (p *Printer) PrintRecordVerdict(v *types.RecordVerdict) {
	if v == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %d\n", v.Score))
	sb.WriteString(fmt.Sprintf("Passed: %t\n\n", v.PassedOverall))

	for _, fv := range v.FieldVerdicts {
		mark := "✓"
		detail := fv.MatchedRule
		if !fv.Passed {
			mark = "✗"
			detail = fv.Reason
		}
		sb.WriteString(fmt.Sprintf("%s %-13s %s\n", mark, fv.Dimension, detail))
	}

	if len(v.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, issue := range v.Warnings {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", issue.Dimension, issue.Message))
		}
	}

	p.printBox(fmt.Sprintf("RECORD %s", v.RecordID), strings.TrimSuffix(sb.String(), "\n"))
}
