package compliance

import (
	"fmt"
	"testing"

	"github.com/rcastillo/pliego-compliance/internal/types"
	"github.com/stretchr/testify/assert"
)

func intelRule(minFamily string, acceptSuperior bool) []types.ProcessorRule {
	return []types.ProcessorRule{{Brand: "Intel", MinFamily: minFamily, AcceptSuperior: acceptSuperior}}
}

func TestValidateProcessor_AcceptSuperior(t *testing.T) {
	rules := intelRule("i5", true)

	for _, processor := range []string{"intel core i5-10400", "i7-1165g7", "intel i9-13900k"} {
		t.Run(processor, func(t *testing.T) {
			v := ValidateProcessor(processor, rules, DefaultBrandHeuristics)
			assert.True(t, v.Passed, v.Reason)
			assert.Equal(t, types.DimensionProcessor, v.Dimension)
		})
	}
}

func TestValidateProcessor_AcceptSuperior_BelowMinimum(t *testing.T) {
	v := ValidateProcessor("intel core i3-8100", intelRule("i5", true), DefaultBrandHeuristics)
	assert.False(t, v.Passed)
	assert.Contains(t, v.Reason, "at least")
}

func TestValidateProcessor_BrandOmitted(t *testing.T) {
	// Spreadsheets often omit "Intel" entirely; the i[3579]- pattern must
	// still detect the brand.
	v := ValidateProcessor("i7-1165g7", intelRule("i5", true), DefaultBrandHeuristics)
	assert.True(t, v.Passed, v.Reason)
}

func TestValidateProcessor_ExactOnly(t *testing.T) {
	rules := []types.ProcessorRule{{Brand: "AMD", MinFamily: "Ryzen 5", AcceptSuperior: false}}

	pass := ValidateProcessor("amd ryzen 5 5600x", rules, DefaultBrandHeuristics)
	assert.True(t, pass.Passed, pass.Reason)

	fail := ValidateProcessor("amd ryzen 7 5800x", rules, DefaultBrandHeuristics)
	assert.False(t, fail.Passed)
	assert.Contains(t, fail.Reason, "exactly")
}

func TestValidateProcessor_RyzenWithoutAMDLiteral(t *testing.T) {
	rules := []types.ProcessorRule{{Brand: "AMD", MinFamily: "Ryzen 5", AcceptSuperior: true}}
	v := ValidateProcessor("ryzen 7 5800x", rules, DefaultBrandHeuristics)
	assert.True(t, v.Passed, v.Reason)
}

func TestValidateProcessor_NoBrandMatch(t *testing.T) {
	rules := []types.ProcessorRule{
		{Brand: "Intel", MinFamily: "i5", AcceptSuperior: true},
		{Brand: "AMD", MinFamily: "Ryzen 5", AcceptSuperior: true},
	}
	v := ValidateProcessor("apple m2", rules, DefaultBrandHeuristics)
	assert.False(t, v.Passed)
	// Reason enumerates every accepted brand/family combination.
	assert.Contains(t, v.Reason, "Intel i5")
	assert.Contains(t, v.Reason, "AMD Ryzen 5")
}

func TestValidateProcessor_FirstMatchWins(t *testing.T) {
	// The first rule whose brand matches is authoritative even when a later
	// rule of the same brand would pass.
	rules := []types.ProcessorRule{
		{Brand: "Intel", MinFamily: "i9", AcceptSuperior: false},
		{Brand: "Intel", MinFamily: "i5", AcceptSuperior: true},
	}
	v := ValidateProcessor("intel core i7-9700", rules, DefaultBrandHeuristics)
	assert.False(t, v.Passed)
	assert.Equal(t, "Intel i9", v.MatchedRule)
}

func TestValidateProcessor_FamilyUndetermined(t *testing.T) {
	v := ValidateProcessor("intel pentium gold", intelRule("i5", true), DefaultBrandHeuristics)
	assert.False(t, v.Passed)
	assert.Contains(t, v.Reason, "could not be determined")
}

func TestValidateProcessor_Deterministic(t *testing.T) {
	rules := intelRule("i5", true)
	first := ValidateProcessor("i7-1165g7", rules, DefaultBrandHeuristics)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ValidateProcessor("i7-1165g7", rules, DefaultBrandHeuristics))
	}
}

func TestFamilyDigit(t *testing.T) {
	for input, want := range map[string]int{"i5": 5, "Ryzen 7": 7, "i9": 9, "core": 0} {
		t.Run(fmt.Sprintf("%s=%d", input, want), func(t *testing.T) {
			assert.Equal(t, want, familyDigit(input))
		})
	}
}
