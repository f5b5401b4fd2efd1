package visual

import (
	"strings"
	"testing"

	"godrift/domain/drift"
)

func TestChart_RenderMarksDriftAndThreshold(t *testing.T) {
	rep := drift.NewReport()
	rep.Add("Drifted", drift.FeatureResult{PValue: 0.01, DriftDetected: true, Type: drift.TypeNumerical})
	rep.Add("Stable", drift.FeatureResult{PValue: 0.9, Type: drift.TypeNumerical})

	svg := NewChart().Render(rep, 0.05)

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("not an SVG document: %q", svg[:20])
	}
	if !strings.Contains(svg, "#c0392b") {
		t.Fatalf("drifted bar color missing")
	}
	if !strings.Contains(svg, "#2e8b57") {
		t.Fatalf("stable bar color missing")
	}
	if !strings.Contains(svg, "threshold (0.05)") {
		t.Fatalf("threshold line label missing")
	}
	if !strings.Contains(svg, "Drifted") || !strings.Contains(svg, "Stable") {
		t.Fatalf("feature labels missing")
	}
}

func TestChart_EscapesFeatureNames(t *testing.T) {
	rep := drift.NewReport()
	rep.Add("a<b&c", drift.FeatureResult{PValue: 0.5})

	svg := NewChart().Render(rep, 0.05)
	if strings.Contains(svg, "a<b&c") {
		t.Fatalf("feature name not escaped")
	}
	if !strings.Contains(svg, "a&lt;b&amp;c") {
		t.Fatalf("escaped feature name missing")
	}
}
