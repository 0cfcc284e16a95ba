// Package types provides type definitions for structured data used throughout the compliance engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Dimension identifies one validated aspect of an equipment record.
// Every FieldVerdict and RecordIssue carries its Dimension explicitly so
// downstream consumers (the batch aggregator, the UI) never have to infer
// it from message text.
type Dimension string

// Known dimensions.
const (
	DimensionProcessor    Dimension = "processor"
	DimensionMemory       Dimension = "memory"
	DimensionStorage      Dimension = "storage"
	DimensionOS           Dimension = "operating_system"
	DimensionBrowser      Dimension = "browser"
	DimensionHeadset      Dimension = "headset"
	DimensionConnectivity Dimension = "connectivity"
)

// AllDimensions lists every dimension in evaluation order.
var AllDimensions = []Dimension{
	DimensionProcessor,
	DimensionMemory,
	DimensionStorage,
	DimensionOS,
	DimensionBrowser,
	DimensionHeadset,
	DimensionConnectivity,
}
