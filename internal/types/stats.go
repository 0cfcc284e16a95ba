package types

// ScoreBandHistogram buckets record scores into four non-overlapping bands.
type ScoreBandHistogram struct {
	Excellent int `json:"excellent"` // 90-100
	Good      int `json:"good"`      // 70-89
	Fair      int `json:"fair"`      // 50-69
	Poor      int `json:"poor"`      // 0-49
}

// BatchStatistics is the aggregate over one batch of record verdicts. It is
// fully derived from its inputs and recomputed on demand, never persisted on
// its own.
type BatchStatistics struct {
	Total                  int                `json:"total"`
	PassCount              int                `json:"pass_count"`
	FailCount              int                `json:"fail_count"`
	WarnCount              int                `json:"warn_count"`
	PassRatePercent        int                `json:"pass_rate_percent"`
	AverageScore           int                `json:"average_score"`
	ErrorCountsByDimension map[Dimension]int  `json:"error_counts_by_dimension"`
	ScoreBands             ScoreBandHistogram `json:"score_bands"`
}
