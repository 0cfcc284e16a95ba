package compliance

import (
	"fmt"
	"math"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

// ValidateMemory checks the already-normalized memory capacity against the
// sheet minimum. The raw spreadsheet string is never re-parsed here: unit
// suffixes and locale separators were resolved upstream, and a zero or NaN
// capacity deterministically fails the dimension.
func ValidateMemory(memoryGb float64, minimumGb float64) types.FieldVerdict {
	ruleDesc := fmt.Sprintf("minimum %g GB RAM", minimumGb)
	if math.IsNaN(memoryGb) || memoryGb <= 0 {
		return types.FieldVerdict{
			Dimension:   types.DimensionMemory,
			Passed:      false,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("memory capacity could not be determined (minimum %g GB)", minimumGb),
		}
	}
	if memoryGb < minimumGb {
		return types.FieldVerdict{
			Dimension:   types.DimensionMemory,
			Passed:      false,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("memory %g GB is below the minimum %g GB", memoryGb, minimumGb),
		}
	}
	return types.FieldVerdict{
		Dimension:   types.DimensionMemory,
		Passed:      true,
		MatchedRule: ruleDesc,
		Reason:      fmt.Sprintf("memory %g GB meets the minimum %g GB", memoryGb, minimumGb),
	}
}
