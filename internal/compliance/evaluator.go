package compliance

import (
	"fmt"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

// Weights maps each dimension to its score deduction on failure.
type Weights map[types.Dimension]int

// DefaultWeights returns the deduction table used in production. The values
// reflect relative business criticality: compute capability costs more than
// peripheral compliance.
func DefaultWeights() Weights {
	return Weights{
		types.DimensionProcessor:    30,
		types.DimensionMemory:       25,
		types.DimensionStorage:      25,
		types.DimensionBrowser:      15,
		types.DimensionConnectivity: 15,
		types.DimensionHeadset:      10,
		types.DimensionOS:           10,
	}
}

// dimensionCheck is one entry of the evaluator's dimension table: whether
// the dimension applies to a given (rules, record) pair, and how to
// validate it.
type dimensionCheck struct {
	dimension  types.Dimension
	applicable func(rules *types.Rules, rec *types.EquipmentRecord) bool
	validate   func(e *Evaluator, rules *types.Rules, rec *types.EquipmentRecord) types.FieldVerdict
}

// Evaluator composes the field validators and folds their verdicts into one
// RecordVerdict per equipment record. It holds no mutable state: the same
// (record, rules) pair always yields an identical verdict, so batches may
// be evaluated sequentially or in parallel with identical results.
type Evaluator struct {
	weights    Weights
	heuristics []BrandHeuristic
	dimensions []dimensionCheck
}

// NewEvaluator builds an evaluator with the given deduction weights and
// brand heuristics. Nil arguments select the defaults.
func NewEvaluator(weights Weights, heuristics []BrandHeuristic) *Evaluator {
	if weights == nil {
		weights = DefaultWeights()
	}
	if heuristics == nil {
		heuristics = DefaultBrandHeuristics
	}
	return &Evaluator{
		weights:    weights,
		heuristics: heuristics,
		dimensions: []dimensionCheck{
			{
				dimension:  types.DimensionProcessor,
				applicable: func(r *types.Rules, _ *types.EquipmentRecord) bool { return len(r.AcceptedProcessors) > 0 },
				validate: func(e *Evaluator, r *types.Rules, rec *types.EquipmentRecord) types.FieldVerdict {
					return ValidateProcessor(rec.Processor, r.AcceptedProcessors, e.heuristics)
				},
			},
			{
				dimension:  types.DimensionMemory,
				applicable: func(r *types.Rules, _ *types.EquipmentRecord) bool { return r.MinimumMemoryGb > 0 },
				validate: func(_ *Evaluator, r *types.Rules, rec *types.EquipmentRecord) types.FieldVerdict {
					return ValidateMemory(rec.MemoryGb, r.MinimumMemoryGb)
				},
			},
			{
				dimension:  types.DimensionStorage,
				applicable: func(r *types.Rules, _ *types.EquipmentRecord) bool { return len(r.AcceptedStorage) > 0 },
				validate: func(_ *Evaluator, r *types.Rules, rec *types.EquipmentRecord) types.FieldVerdict {
					return ValidateStorage(rec.StorageType, rec.StorageCapacityGb, r.AcceptedStorage)
				},
			},
			{
				dimension:  types.DimensionOS,
				applicable: func(r *types.Rules, _ *types.EquipmentRecord) bool { return r.OperatingSystem != nil },
				validate: func(_ *Evaluator, r *types.Rules, rec *types.EquipmentRecord) types.FieldVerdict {
					return ValidateOS(rec.OS, *r.OperatingSystem)
				},
			},
			{
				dimension:  types.DimensionBrowser,
				applicable: func(r *types.Rules, _ *types.EquipmentRecord) bool { return len(r.AcceptedBrowsers) > 0 },
				validate: func(_ *Evaluator, r *types.Rules, rec *types.EquipmentRecord) types.FieldVerdict {
					return ValidateBrowser(rec.Browser, r.AcceptedBrowsers)
				},
			},
			{
				dimension: types.DimensionHeadset,
				applicable: func(r *types.Rules, _ *types.EquipmentRecord) bool {
					return r.HeadsetHomologation != nil && r.HeadsetHomologation.Enabled && len(r.HeadsetHomologation.Models) > 0
				},
				validate: func(_ *Evaluator, r *types.Rules, rec *types.EquipmentRecord) types.FieldVerdict {
					return ValidateHeadset(rec.Headset, *r.HeadsetHomologation)
				},
			},
			{
				dimension: types.DimensionConnectivity,
				applicable: func(r *types.Rules, rec *types.EquipmentRecord) bool {
					if !rec.IsRemoteWork || r.Connectivity == nil {
						return false
					}
					c := r.Connectivity
					return len(c.Technologies) > 0 || c.MinDownloadMbps > 0 || c.MinUploadMbps > 0
				},
				validate: func(_ *Evaluator, r *types.Rules, rec *types.EquipmentRecord) types.FieldVerdict {
					return ValidateConnectivity(rec.ConnectionType, rec.DownloadMbps, rec.UploadMbps, *r.Connectivity)
				},
			},
		},
	}
}

// isWarningClass reports whether failures of a dimension are warnings
// instead of hard errors. Only OS mismatches are warning-class: they lower
// the score but never flip passed_overall.
func isWarningClass(dim types.Dimension) bool {
	return dim == types.DimensionOS
}

// Evaluate runs every applicable field validator over one record and folds
// the verdicts into a RecordVerdict. Deductions apply independently and
// additively; the score is floored at 0. An absent rule section silently
// skips its dimension. A nil rule set is the one misuse that returns an
// error.
func (e *Evaluator) Evaluate(rules *types.Rules, rec *types.EquipmentRecord) (*types.RecordVerdict, error) {
	if rules == nil {
		return nil, fmt.Errorf("rules must not be nil")
	}
	if rec == nil {
		return nil, fmt.Errorf("record must not be nil")
	}

	verdict := &types.RecordVerdict{
		RecordID:      rec.ID,
		PassedOverall: true,
		Score:         100,
	}

	for _, check := range e.dimensions {
		if !check.applicable(rules, rec) {
			continue
		}
		fv := check.validate(e, rules, rec)
		verdict.FieldVerdicts = append(verdict.FieldVerdicts, fv)
		if fv.Passed {
			continue
		}

		verdict.Score -= e.weights[check.dimension]
		issue := types.RecordIssue{Dimension: fv.Dimension, Message: fv.Reason}
		if isWarningClass(check.dimension) {
			verdict.Warnings = append(verdict.Warnings, issue)
		} else {
			verdict.Errors = append(verdict.Errors, issue)
			verdict.PassedOverall = false
		}
	}

	if verdict.Score < 0 {
		verdict.Score = 0
	}
	return verdict, nil
}
