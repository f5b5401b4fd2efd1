package ui

import (
	"strings"
	"testing"

	"godrift/domain/core"
	"godrift/domain/drift"
)

func TestNarrative_LeadsWithRiskAndSortsDriftedFirst(t *testing.T) {
	features := map[core.FeatureName]drift.FeatureResult{
		"Stable":  {PValue: 0.8, Type: drift.TypeNumerical},
		"Drifted": {PValue: 0.001, Statistic: 0.6, DriftDetected: true, Type: drift.TypeNumerical},
	}

	md := Narrative("drift_20250101_120000_abcd1234.json", features)

	if !strings.Contains(md, "Risk level: HIGH") {
		t.Fatalf("aggregate risk missing from narrative:\n%s", md)
	}
	if strings.Index(md, "Drifted") > strings.Index(md, "Stable") {
		t.Fatalf("drifted feature not listed first:\n%s", md)
	}
}
