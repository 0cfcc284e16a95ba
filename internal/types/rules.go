package types

// Rules is the flat rule set the field validators consume, produced from a
// PliegoDocument by the ruleset transformer. Nil slices and nil pointers
// mean the corresponding dimension is not validated.
type Rules struct {
	AcceptedProcessors  []ProcessorRule
	MinimumMemoryGb     float64
	AcceptedStorage     []StorageRule
	OperatingSystem     *OSRule
	AcceptedBrowsers    []BrowserRule
	HeadsetHomologation *HeadsetHomologation
	Connectivity        *ConnectivitySection
}
