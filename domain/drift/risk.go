package drift

import (
	"math"
)

// RiskLevel is the coarse severity band handed to alerting.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// RiskAssessment summarizes per-feature flags into a percentage and band.
type RiskAssessment struct {
	TotalFeatures   int       `json:"total_features"`
	DriftedCount    int       `json:"drifted_count"`
	DriftPercentage float64   `json:"drift_percentage"`
	RiskLevel       RiskLevel `json:"risk_level"`
}

// AssessRisk derives the aggregate assessment from a report. Pure function,
// no I/O: the caller decides what to do with the band.
func AssessRisk(report *Report) RiskAssessment {
	total := report.Size()
	drifted := report.DriftedCount()

	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(drifted)/float64(total)*100*100) / 100
	}

	return RiskAssessment{
		TotalFeatures:   total,
		DriftedCount:    drifted,
		DriftPercentage: percentage,
		RiskLevel:       BandFor(percentage),
	}
}

// BandFor maps a drift percentage to its risk band. Boundaries are exact:
// below 20 is LOW, below 50 is MEDIUM, 50 and above is HIGH.
func BandFor(percentage float64) RiskLevel {
	switch {
	case percentage < 20:
		return RiskLow
	case percentage < 50:
		return RiskMedium
	default:
		return RiskHigh
	}
}
