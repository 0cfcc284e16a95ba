package compliance

import (
	"fmt"
	"math"
	"strings"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

// ValidateConnectivity checks a remote-work record's connection against the
// sheet's connectivity minimums. A technology entry that substring-matches
// the connection type is authoritative; otherwise the flat minimums apply.
// Download is checked before upload, and whichever falls short first is
// reported. With no matching technology and no flat minimums the dimension
// passes as "not specified".
func ValidateConnectivity(connectionType string, downMbps, upMbps float64, section types.ConnectivitySection) types.FieldVerdict {
	minDown := section.MinDownloadMbps
	minUp := section.MinUploadMbps
	ruleDesc := "flat minimums"

	matched := false
	for _, tech := range section.Technologies {
		if strings.Contains(connectionType, strings.ToLower(tech.Type)) {
			minDown = tech.MinDownloadMbps
			minUp = tech.MinUploadMbps
			ruleDesc = tech.Type
			matched = true
			break
		}
	}

	if !matched && minDown == 0 && minUp == 0 {
		return types.FieldVerdict{
			Dimension: types.DimensionConnectivity,
			Passed:    true,
			Reason:    fmt.Sprintf("no connectivity minimums specified for %q", connectionType),
		}
	}
	ruleDesc = fmt.Sprintf("%s: %g down / %g up Mbps", ruleDesc, minDown, minUp)

	if minDown > 0 && (math.IsNaN(downMbps) || downMbps < minDown) {
		return types.FieldVerdict{
			Dimension:   types.DimensionConnectivity,
			Passed:      false,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("download %g Mbps is below the minimum %g Mbps", downMbps, minDown),
		}
	}
	if minUp > 0 && (math.IsNaN(upMbps) || upMbps < minUp) {
		return types.FieldVerdict{
			Dimension:   types.DimensionConnectivity,
			Passed:      false,
			MatchedRule: ruleDesc,
			Reason:      fmt.Sprintf("upload %g Mbps is below the minimum %g Mbps", upMbps, minUp),
		}
	}

	return types.FieldVerdict{
		Dimension:   types.DimensionConnectivity,
		Passed:      true,
		MatchedRule: ruleDesc,
		Reason:      fmt.Sprintf("connection %g down / %g up Mbps meets the minimums", downMbps, upMbps),
	}
}
