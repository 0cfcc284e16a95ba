// Package normalizer turns raw spreadsheet text into the normalized fields
// the compliance validators consume. Parsing happens here exactly once, at
// ingestion time; validators must never re-parse raw text.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize lowercases, strips accents, collapses whitespace and trims.
// Field technicians type "Telefónica", "NÚCLEO", "  i7-1165G7 "; matchers
// downstream expect "telefonica", "nucleo", "i7-1165g7".
func Normalize(raw string) string {
	s, _, err := transform.String(deaccent, raw)
	if err != nil {
		// Removal transforms only fail on invalid UTF-8; fall back to the
		// input so a bad cell degrades to a mismatch, not a crash.
		s = raw
	}
	s = strings.ToLower(s)
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// numberWithUnit captures a numeric token with an optional capacity unit.
// Accepts comma decimal separators ("1,5 TB").
var numberWithUnit = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(tb|gb|mb|t|g|m)?\b`)

// ParseCapacityGb extracts a storage capacity in GB from free text like
// "512GB SSD", "1 TB", "1,5tb nvme". Returns 0 when no numeric token is
// found; validators treat 0 as "does not meet minimum".
func ParseCapacityGb(raw string) float64 {
	return parseGb(raw)
}

// ParseRAMGb extracts a memory capacity in GB from free text like "16 GB",
// "8gb ddr4". Returns 0 when no numeric token is found.
func ParseRAMGb(raw string) float64 {
	return parseGb(raw)
}

func parseGb(raw string) float64 {
	m := numberWithUnit.FindStringSubmatch(Normalize(raw))
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0
	}
	switch m[2] {
	case "tb", "t":
		return value * 1024
	case "mb", "m":
		return value / 1024
	default:
		return value
	}
}

var mbpsToken = regexp.MustCompile(`(\d+(?:[.,]\d+)?)`)

// ParseMbps extracts a bandwidth figure from free text like "100 Mbps",
// "20 megas". Returns 0 when no numeric token is found.
func ParseMbps(raw string) float64 {
	m := mbpsToken.FindStringSubmatch(Normalize(raw))
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0
	}
	return value
}
