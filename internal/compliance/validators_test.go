package compliance

import (
	"math"
	"testing"

	"github.com/rcastillo/pliego-compliance/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestValidateMemory_MeetsMinimum(t *testing.T) {
	v := ValidateMemory(16, 8)
	assert.True(t, v.Passed)
	assert.Equal(t, types.DimensionMemory, v.Dimension)
}

func TestValidateMemory_BelowMinimum(t *testing.T) {
	v := ValidateMemory(4, 8)
	assert.False(t, v.Passed)
	// Reason carries both values for operator display.
	assert.Contains(t, v.Reason, "4 GB")
	assert.Contains(t, v.Reason, "8 GB")
}

func TestValidateMemory_MalformedInput(t *testing.T) {
	// A NaN or zero capacity (upstream parse failure) fails deterministically
	// instead of propagating.
	assert.False(t, ValidateMemory(math.NaN(), 8).Passed)
	assert.False(t, ValidateMemory(0, 8).Passed)
	assert.Contains(t, ValidateMemory(0, 8).Reason, "could not be determined")
}

func TestValidateStorage_FirstTypeMatchIsAuthoritative(t *testing.T) {
	rules := []types.StorageRule{
		{Type: "ssd", MinCapacityGb: 512},
		{Type: "hdd", MinCapacityGb: 256},
	}

	// Type matches ssd but capacity falls short: the record fails with the
	// ssd threshold rather than falling through to the hdd entry.
	v := ValidateStorage("ssd nvme", 256, rules)
	assert.False(t, v.Passed)
	assert.Equal(t, "ssd >= 512 GB", v.MatchedRule)
}

func TestValidateStorage_Pass(t *testing.T) {
	rules := []types.StorageRule{{Type: "ssd", MinCapacityGb: 256}}
	v := ValidateStorage("ssd", 512, rules)
	assert.True(t, v.Passed)
}

func TestValidateStorage_NoReparse(t *testing.T) {
	// The normalized capacity is authoritative regardless of what the raw
	// cell said; 512 pre-set upstream must validate as 512.
	rules := []types.StorageRule{{Type: "ssd", MinCapacityGb: 512}}
	v := ValidateStorage("ssd", 512, rules)
	assert.True(t, v.Passed, v.Reason)
}

func TestValidateStorage_NoTypeMatch(t *testing.T) {
	rules := []types.StorageRule{
		{Type: "ssd", MinCapacityGb: 512},
		{Type: "nvme", MinCapacityGb: 256},
	}
	v := ValidateStorage("hdd sata", 1024, rules)
	assert.False(t, v.Passed)
	assert.Contains(t, v.Reason, "ssd >= 512 GB")
	assert.Contains(t, v.Reason, "nvme >= 256 GB")
}

func TestValidateStorage_MalformedCapacity(t *testing.T) {
	rules := []types.StorageRule{{Type: "ssd", MinCapacityGb: 512}}
	assert.False(t, ValidateStorage("ssd", math.NaN(), rules).Passed)
	assert.False(t, ValidateStorage("ssd", 0, rules).Passed)
}

func TestValidateOS_AnyVersionSentinel(t *testing.T) {
	// "" and the literal "0" both accept any version of the matching OS.
	for _, minVersion := range []string{"", "0"} {
		v := ValidateOS("windows 8.1", types.OSRule{Name: "Windows", MinVersion: minVersion})
		assert.True(t, v.Passed, v.Reason)
	}
}

func TestValidateOS_VersionComparison(t *testing.T) {
	rule := types.OSRule{Name: "Windows", MinVersion: "10"}

	assert.True(t, ValidateOS("windows 11 pro", rule).Passed)
	assert.True(t, ValidateOS("windows 10 home", rule).Passed)
	assert.False(t, ValidateOS("windows 8.1", rule).Passed)
}

func TestValidateOS_NameMismatch(t *testing.T) {
	v := ValidateOS("ubuntu 22.04", types.OSRule{Name: "Windows", MinVersion: "10"})
	assert.False(t, v.Passed)
	assert.Equal(t, types.DimensionOS, v.Dimension)
}

func TestValidateOS_VersionUndetermined(t *testing.T) {
	v := ValidateOS("windows", types.OSRule{Name: "Windows", MinVersion: "10"})
	assert.False(t, v.Passed)
	assert.Contains(t, v.Reason, "could not be determined")
}

func TestValidateBrowser_VersionKeyword(t *testing.T) {
	rules := []types.BrowserRule{{Name: "Chrome", MinVersion: 120}}
	v := ValidateBrowser("google chrome version 141.0.7339.127", rules)
	assert.True(t, v.Passed, v.Reason)
}

func TestValidateBrowser_DottedFallback(t *testing.T) {
	rules := []types.BrowserRule{{Name: "Firefox", MinVersion: 100}}
	v := ValidateBrowser("mozilla firefox 115.2.1", rules)
	assert.True(t, v.Passed, v.Reason)
}

func TestValidateBrowser_MajorBelowMinimum(t *testing.T) {
	rules := []types.BrowserRule{{Name: "Chrome", MinVersion: 120}}
	v := ValidateBrowser("google chrome version 99.0.4844.51", rules)
	assert.False(t, v.Passed)
}

func TestValidateBrowser_BrandNotPermitted(t *testing.T) {
	rules := []types.BrowserRule{
		{Name: "Chrome", MinVersion: 120},
		{Name: "Edge", MinVersion: 110},
	}
	v := ValidateBrowser("opera 95.0", rules)
	assert.False(t, v.Passed)
	assert.Contains(t, v.Reason, "Chrome")
	assert.Contains(t, v.Reason, "Edge")
}

func TestValidateBrowser_UnverifiableVersion(t *testing.T) {
	rules := []types.BrowserRule{{Name: "Chrome", MinVersion: 120}}
	v := ValidateBrowser("google chrome", rules)
	assert.False(t, v.Passed)
	assert.Contains(t, v.Reason, "could not be verified")

	// With no minimum required, an unparseable version still passes.
	noMin := []types.BrowserRule{{Name: "Chrome"}}
	assert.True(t, ValidateBrowser("google chrome", noMin).Passed)
}

func TestValidateHeadset_ConjunctiveMatch(t *testing.T) {
	homologation := types.HeadsetHomologation{
		Enabled: true,
		Models: []types.HomologatedHeadset{
			{Brand: "Jabra", Model: "Biz 2300"},
			{Brand: "Plantronics", Model: "Blackwire"},
		},
	}

	// Brand from one entry plus model from another is not a match.
	v := ValidateHeadset("jabra blackwire", homologation)
	assert.False(t, v.Passed)
	assert.Contains(t, v.Reason, "2 homologated models")

	assert.True(t, ValidateHeadset("jabra biz 2300 duo", homologation).Passed)
	assert.True(t, ValidateHeadset("plantronics blackwire 5220", homologation).Passed)
}

func TestValidateConnectivity_TechnologySpecificWins(t *testing.T) {
	section := types.ConnectivitySection{
		Technologies:    []types.TechnologyMinimum{{Type: "fibra", MinDownloadMbps: 50, MinUploadMbps: 10}},
		MinDownloadMbps: 10,
		MinUploadMbps:   2,
	}

	// Connection matches the fibra entry, so its thresholds are authoritative.
	v := ValidateConnectivity("fibra optica", 30, 15, section)
	assert.False(t, v.Passed)
	assert.Contains(t, v.Reason, "download 30")
}

func TestValidateConnectivity_DownCheckedBeforeUp(t *testing.T) {
	section := types.ConnectivitySection{MinDownloadMbps: 50, MinUploadMbps: 10}
	v := ValidateConnectivity("adsl", 30, 5, section)
	assert.False(t, v.Passed)
	// Both fall short; the download shortfall is reported first.
	assert.Contains(t, v.Reason, "download")
}

func TestValidateConnectivity_FlatFallback(t *testing.T) {
	section := types.ConnectivitySection{
		Technologies:    []types.TechnologyMinimum{{Type: "fibra", MinDownloadMbps: 50, MinUploadMbps: 10}},
		MinDownloadMbps: 10,
		MinUploadMbps:   2,
	}
	v := ValidateConnectivity("4g movil", 15, 3, section)
	assert.True(t, v.Passed, v.Reason)
}

func TestValidateConnectivity_NothingConfigured(t *testing.T) {
	v := ValidateConnectivity("satelite", 1, 1, types.ConnectivitySection{})
	assert.True(t, v.Passed)
	assert.Contains(t, v.Reason, "no connectivity minimums")
}
