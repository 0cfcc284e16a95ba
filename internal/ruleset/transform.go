// Package ruleset loads persisted requirement sheets (pliegos) and adapts
// their sectioned document schema into the flat rule set the compliance
// validators consume.
package ruleset

import (
	"fmt"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

// Transform flattens a requirement sheet's sectioned document into the
// Rules struct the record evaluator consumes. Absent sections become nil
// slices or zero values, which the evaluator reads as "do not validate this
// dimension". The sheet is treated as read-only.
func Transform(sheet *types.RequirementSheet) (*types.Rules, error) {
	if sheet == nil {
		return nil, fmt.Errorf("requirement sheet must not be nil")
	}
	if sheet.Document == nil {
		return nil, fmt.Errorf("requirement sheet %s v%d has no document", sheet.Code, sheet.Version)
	}

	rules := &types.Rules{}
	doc := sheet.Document

	if hw := doc.Hardware; hw != nil {
		rules.AcceptedProcessors = hw.AcceptedProcessors
		rules.MinimumMemoryGb = hw.MinimumMemoryGb
		rules.AcceptedStorage = hw.AcceptedStorage
	}
	if sw := doc.Software; sw != nil {
		rules.OperatingSystem = sw.OperatingSystem
		rules.AcceptedBrowsers = sw.AcceptedBrowsers
	}
	if p := doc.Peripherals; p != nil {
		rules.HeadsetHomologation = p.HeadsetHomologation
	}
	rules.Connectivity = doc.Connectivity

	return rules, nil
}
