package compliance

import (
	"fmt"
	"math"
	"strings"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

// ValidateStorage checks the normalized storage type and pre-parsed capacity
// against the ordered accepted-storage list. The first entry whose type
// substring-matches the record's type is authoritative: if capacity falls
// short of that entry, the record fails with that entry's threshold rather
// than trying entries of a different type.
func ValidateStorage(storageType string, capacityGb float64, rules []types.StorageRule) types.FieldVerdict {
	for _, rule := range rules {
		if !strings.Contains(storageType, strings.ToLower(rule.Type)) {
			continue
		}

		ruleDesc := fmt.Sprintf("%s >= %g GB", rule.Type, rule.MinCapacityGb)
		if math.IsNaN(capacityGb) || capacityGb <= 0 {
			return types.FieldVerdict{
				Dimension:   types.DimensionStorage,
				Passed:      false,
				MatchedRule: ruleDesc,
				Reason:      fmt.Sprintf("storage capacity could not be determined (%s requires %g GB)", rule.Type, rule.MinCapacityGb),
			}
		}
		if capacityGb < rule.MinCapacityGb {
			return types.FieldVerdict{
				Dimension:   types.DimensionStorage,
				Passed:      false,
				MatchedRule: ruleDesc,
				Reason:      fmt.Sprintf("storage %g GB is below the %g GB minimum for %s", capacityGb, rule.MinCapacityGb, rule.Type),
			}
		}
		return types.FieldVerdict{
			Dimension:   types.DimensionStorage,
			Passed:      true,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("storage %s %g GB meets the %g GB minimum", rule.Type, capacityGb, rule.MinCapacityGb),
		}
	}

	return types.FieldVerdict{
		Dimension: types.DimensionStorage,
		Passed:    false,
		Reason:    fmt.Sprintf("storage type %q does not match any accepted type; accepted: %s", storageType, describeStorageRules(rules)),
	}
}

func describeStorageRules(rules []types.StorageRule) string {
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		parts = append(parts, fmt.Sprintf("%s >= %g GB", r.Type, r.MinCapacityGb))
	}
	return strings.Join(parts, ", ")
}
