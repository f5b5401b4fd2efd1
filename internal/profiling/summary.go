package profiling

import (
	"github.com/montanaflynn/stats"

	"godrift/domain/drift"
)

// Summarize computes the per-sample summary attached to each feature result.
// Returns nil for an empty sample: a degenerate feature has nothing to
// describe.
func Summarize(sample []float64) *drift.SampleSummary {
	if len(sample) == 0 {
		return nil
	}

	mean, err := stats.Mean(sample)
	if err != nil {
		return nil
	}
	stdDev, err := stats.StandardDeviation(sample)
	if err != nil {
		return nil
	}
	min, err := stats.Min(sample)
	if err != nil {
		return nil
	}
	max, err := stats.Max(sample)
	if err != nil {
		return nil
	}
	median, err := stats.Median(sample)
	if err != nil {
		return nil
	}

	return &drift.SampleSummary{
		Size:   len(sample),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
	}
}
