package compliance

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

var firstInteger = regexp.MustCompile(`\d+`)

// ValidateOS checks the normalized OS string against the required OS name
// and minimum version. A min_version of "" or "0" accepts any version of
// the matching OS. OS failures are warning-class: the record evaluator
// deducts score but never flips passed_overall on them.
func ValidateOS(osText string, rule types.OSRule) types.FieldVerdict {
	name := strings.ToLower(rule.Name)
	ruleDesc := rule.Name
	if rule.MinVersion != "" && rule.MinVersion != "0" {
		ruleDesc = fmt.Sprintf("%s >= %s", rule.Name, rule.MinVersion)
	}

	if !strings.Contains(osText, name) {
		return types.FieldVerdict{
			Dimension:   types.DimensionOS,
			Passed:      false,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("operating system %q is not %s", osText, rule.Name),
		}
	}

	if rule.MinVersion == "" || rule.MinVersion == "0" {
		return types.FieldVerdict{
			Dimension:   types.DimensionOS,
			Passed:      true,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("operating system matches %s (any version accepted)", rule.Name),
		}
	}

	required, err := strconv.Atoi(strings.TrimSpace(rule.MinVersion))
	if err != nil {
		if m := firstInteger.FindString(rule.MinVersion); m != "" {
			required, _ = strconv.Atoi(m)
		}
	}

	versionToken := firstInteger.FindString(osText)
	if versionToken == "" {
		return types.FieldVerdict{
			Dimension:   types.DimensionOS,
			Passed:      false,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("operating system %q matches %s but its version could not be determined (minimum %s)", osText, rule.Name, rule.MinVersion),
		}
	}
	detected, _ := strconv.Atoi(versionToken)

	if detected < required {
		return types.FieldVerdict{
			Dimension:   types.DimensionOS,
			Passed:      false,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("%s version %d is below the minimum %s", rule.Name, detected, rule.MinVersion),
		}
	}
	return types.FieldVerdict{
		Dimension:   types.DimensionOS,
		Passed:      true,
		MatchedRule: ruleDesc,
		Reason:      fmt.Sprintf("%s version %d meets the minimum %s", rule.Name, detected, rule.MinVersion),
	}
}
