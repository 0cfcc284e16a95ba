package compliance

import (
	"math"

	"github.com/rcastillo/pliego-compliance/internal/types"
)

// Aggregate reduces a batch of record verdicts into distribution statistics.
// The reduction is pure and order-independent: scores bucket into exactly
// one of four bands, the average rounds to the nearest integer, and error
// tallies key off each issue's explicit dimension tag.
func Aggregate(verdicts []types.RecordVerdict) types.BatchStatistics {
	stats := types.BatchStatistics{
		Total:                  len(verdicts),
		ErrorCountsByDimension: make(map[types.Dimension]int),
	}
	if stats.Total == 0 {
		return stats
	}

	scoreSum := 0
	for _, v := range verdicts {
		if v.PassedOverall {
			stats.PassCount++
		} else {
			stats.FailCount++
		}
		if len(v.Warnings) > 0 {
			stats.WarnCount++
		}
		for _, issue := range v.Errors {
			stats.ErrorCountsByDimension[issue.Dimension]++
		}

		scoreSum += v.Score
		switch {
		case v.Score >= 90:
			stats.ScoreBands.Excellent++
		case v.Score >= 70:
			stats.ScoreBands.Good++
		case v.Score >= 50:
			stats.ScoreBands.Fair++
		default:
			stats.ScoreBands.Poor++
		}
	}

	stats.AverageScore = int(math.Round(float64(scoreSum) / float64(stats.Total)))
	stats.PassRatePercent = int(math.Round(float64(stats.PassCount) / float64(stats.Total) * 100))
	return stats
}
