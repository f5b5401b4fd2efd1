package drift

import (
	"godrift/domain/core"
)

// Feature type markers carried on every result. Degenerate marks a feature
// whose comparison was undefined (empty sample on either side).
const (
	TypeNumerical   = "numerical"
	TypeCategorical = "categorical"
	TypeDegenerate  = "degenerate"
)

// SampleSummary describes one side's post-filter sample.
type SampleSummary struct {
	Size   int     `json:"size"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// FeatureResult is the outcome of one feature's two-sample comparison.
// DriftDetected is bound to the threshold in force when the result was
// created and is never re-evaluated against a different threshold.
type FeatureResult struct {
	PValue        float64 `json:"p_value"`
	Statistic     float64 `json:"statistic"`
	DriftDetected bool    `json:"drift_detected"`
	Type          string  `json:"type"`

	Reference  *SampleSummary `json:"reference,omitempty"`
	Production *SampleSummary `json:"production,omitempty"`
}

// Report maps feature names to their results. Created once per check,
// immutable after creation; the timestamp is used only for artifact naming.
type Report struct {
	CreatedAt core.Timestamp
	Features  map[core.FeatureName]FeatureResult
}

// NewReport creates an empty report stamped now.
func NewReport() *Report {
	return &Report{
		CreatedAt: core.Now(),
		Features:  make(map[core.FeatureName]FeatureResult),
	}
}

// Add records one feature's result. Feature names are unique keys.
func (r *Report) Add(name core.FeatureName, result FeatureResult) {
	r.Features[name] = result
}

// Size returns the number of features in the report.
func (r *Report) Size() int {
	return len(r.Features)
}

// DriftedCount returns how many features were flagged drifted.
func (r *Report) DriftedCount() int {
	count := 0
	for _, f := range r.Features {
		if f.DriftDetected {
			count++
		}
	}
	return count
}
