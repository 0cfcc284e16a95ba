package compliance

import (
	"fmt"
	"strings"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

// ValidateHeadset checks the normalized headset string against the
// homologation list. A device passes only when it contains BOTH the brand
// and the model of the same list entry; brand from one row plus model from
// another is not a match.
func ValidateHeadset(headset string, homologation types.HeadsetHomologation) types.FieldVerdict {
	for _, entry := range homologation.Models {
		brand := strings.ToLower(entry.Brand)
		model := strings.ToLower(entry.Model)
		if strings.Contains(headset, brand) && strings.Contains(headset, model) {
			return types.FieldVerdict{
				Dimension:   types.DimensionHeadset,
				Passed:      true,
				MatchedRule: fmt.Sprintf("%s %s", entry.Brand, entry.Model),
				Reason:      fmt.Sprintf("headset matches homologated model %s %s", entry.Brand, entry.Model),
			}
		}
	}

	return types.FieldVerdict{
		Dimension: types.DimensionHeadset,
		Passed:    false,
		Reason:    fmt.Sprintf("headset %q does not match any of the %d homologated models", headset, len(homologation.Models)),
	}
}
