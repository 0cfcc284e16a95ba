package compliance

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

var (
	versionKeyword = regexp.MustCompile(`version\s+(\d+)`)
	dottedVersion  = regexp.MustCompile(`(\d+)\.\d+\.\d+`)
)

// browserMajorVersion extracts the major version from normalized browser
// text. The token after the word "version" wins ("google chrome version
// 141.0.7339.127" -> 141); otherwise the leading integer of the first
// dotted version pattern is used. Returns 0 when nothing parses.
func browserMajorVersion(browser string) int {
	if m := versionKeyword.FindStringSubmatch(browser); m != nil {
		v, _ := strconv.Atoi(m[1])
		return v
	}
	if m := dottedVersion.FindStringSubmatch(browser); m != nil {
		v, _ := strconv.Atoi(m[1])
		return v
	}
	return 0
}

// ValidateBrowser checks the normalized browser string against the accepted
// browser list. Brand match is substring-based; only the major version is
// compared, minor and patch are discarded.
func ValidateBrowser(browser string, rules []types.BrowserRule) types.FieldVerdict {
	for _, rule := range rules {
		if !strings.Contains(browser, strings.ToLower(rule.Name)) {
			continue
		}

		ruleDesc := rule.Name
		if rule.MinVersion > 0 {
			ruleDesc = fmt.Sprintf("%s >= %d", rule.Name, rule.MinVersion)
		}

		major := browserMajorVersion(browser)
		if major == 0 {
			if rule.MinVersion > 0 {
				return types.FieldVerdict{
					Dimension:   types.DimensionBrowser,
					Passed:      false,
					MatchedRule: ruleDesc,
					Reason:      fmt.Sprintf("browser matches %s but its version could not be verified (minimum %d)", rule.Name, rule.MinVersion),
				}
			}
			return types.FieldVerdict{
				Dimension:   types.DimensionBrowser,
				Passed:      true,
				MatchedRule: ruleDesc,
				Reason:      fmt.Sprintf("browser matches %s (any version accepted)", rule.Name),
			}
		}

		if major < rule.MinVersion {
			return types.FieldVerdict{
				Dimension:   types.DimensionBrowser,
				Passed:      false,
				MatchedRule: ruleDesc,
				Reason:      fmt.Sprintf("%s version %d is below the minimum %d", rule.Name, major, rule.MinVersion),
			}
		}
		return types.FieldVerdict{
			Dimension:   types.DimensionBrowser,
			Passed:      true,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("%s version %d meets the minimum %d", rule.Name, major, rule.MinVersion),
		}
	}

	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return types.FieldVerdict{
		Dimension: types.DimensionBrowser,
		Passed:    false,
		Reason:    fmt.Sprintf("browser %q is not among the permitted browsers: %s", browser, strings.Join(names, ", ")),
	}
}
