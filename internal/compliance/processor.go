// Package compliance validates normalized equipment records against the
// flat rule set of a requirement sheet. Every validator is a pure function:
// business-rule mismatches are returned as verdict data, never as errors.
package compliance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

// BrandHeuristic detects a processor brand in normalized free text and
// extracts its family digit. Source text often omits the brand name
// entirely ("i7-1165g7" with no "intel"), so each brand carries a literal
// list plus an optional model pattern.
type BrandHeuristic struct {
	Brand         string
	Literals      []string
	ModelPattern  *regexp.Regexp // optional, matches brand-specific model text
	FamilyPattern *regexp.Regexp // first capture group is the family digit
}

// DefaultBrandHeuristics covers the brands seen in field inventories.
// Passed explicitly into NewEvaluator so tests can substitute alternates.
var DefaultBrandHeuristics = []BrandHeuristic{
	{
		Brand:         "intel",
		Literals:      []string{"intel"},
		ModelPattern:  regexp.MustCompile(`i[3579][-\s]`),
		FamilyPattern: regexp.MustCompile(`i([3579])`),
	},
	{
		Brand:         "amd",
		Literals:      []string{"amd", "ryzen"},
		FamilyPattern: regexp.MustCompile(`ryzen\s*([3579])`),
	},
}

// matches reports whether the normalized processor text belongs to this brand.
func (h BrandHeuristic) matches(processor string) bool {
	for _, lit := range h.Literals {
		if strings.Contains(processor, lit) {
			return true
		}
	}
	return h.ModelPattern != nil && h.ModelPattern.MatchString(processor)
}

// family extracts the family digit from the normalized processor text.
// Returns 0 when no family can be determined.
func (h BrandHeuristic) family(processor string) int {
	m := h.FamilyPattern.FindStringSubmatch(processor)
	if m == nil {
		return 0
	}
	return int(m[1][0] - '0')
}

var digit = regexp.MustCompile(`\d`)

// familyDigit extracts the family digit from a rule's min_family string
// ("i5" -> 5, "Ryzen 7" -> 7).
func familyDigit(minFamily string) int {
	m := digit.FindString(minFamily)
	if m == "" {
		return 0
	}
	return int(m[0] - '0')
}

// ValidateProcessor checks a normalized processor string against the ordered
// accepted-processor list. The first rule whose brand matches the record is
// authoritative: with accept_superior the detected family may be at or above
// the minimum, otherwise it must be exactly equal.
func ValidateProcessor(processor string, rules []types.ProcessorRule, heuristics []BrandHeuristic) types.FieldVerdict {
	for _, rule := range rules {
		h, ok := heuristicFor(rule.Brand, heuristics)
		if !ok || !h.matches(processor) {
			continue
		}

		ruleDesc := fmt.Sprintf("%s %s", rule.Brand, rule.MinFamily)
		detected := h.family(processor)
		if detected == 0 {
			return types.FieldVerdict{
				Dimension:   types.DimensionProcessor,
				Passed:      false,
				MatchedRule: ruleDesc,
				Reason:      fmt.Sprintf("processor %q matches brand %s but its family could not be determined (minimum %s)", processor, rule.Brand, rule.MinFamily),
			}
		}

		required := familyDigit(rule.MinFamily)
		passed := detected == required
		if rule.AcceptSuperior {
			passed = detected >= required
		}
		if passed {
			return types.FieldVerdict{
				Dimension:   types.DimensionProcessor,
				Passed:      true,
				MatchedRule: ruleDesc,
				Reason:      fmt.Sprintf("processor family %d meets %s %s", detected, rule.Brand, rule.MinFamily),
			}
		}

		comparison := "exactly"
		if rule.AcceptSuperior {
			comparison = "at least"
		}
		return types.FieldVerdict{
			Dimension:   types.DimensionProcessor,
			Passed:      false,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("processor family %d does not meet %s %s (requires %s family %d)", detected, rule.Brand, rule.MinFamily, comparison, required),
		}
	}

	return types.FieldVerdict{
		Dimension: types.DimensionProcessor,
		Passed:    false,
		Reason:    fmt.Sprintf("processor %q does not match any accepted processor; accepted: %s", processor, describeProcessorRules(rules)),
	}
}

func heuristicFor(brand string, heuristics []BrandHeuristic) (BrandHeuristic, bool) {
	key := strings.ToLower(strings.TrimSpace(brand))
	for _, h := range heuristics {
		if h.Brand == key {
			return h, true
		}
	}
	return BrandHeuristic{}, false
}

func describeProcessorRules(rules []types.ProcessorRule) string {
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		suffix := ""
		if r.AcceptSuperior {
			suffix = " or superior"
		}
		parts = append(parts, fmt.Sprintf("%s %s%s", r.Brand, r.MinFamily, suffix))
	}
	return strings.Join(parts, ", ")
}
