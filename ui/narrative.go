package ui

import (
	"fmt"
	"sort"
	"strings"

	"godrift/domain/core"
	"godrift/domain/drift"
)

// Narrative builds the markdown summary of a persisted report: aggregate
// risk up top, then one table row per feature, drifted features first.
func Narrative(name string, features map[core.FeatureName]drift.FeatureResult) string {
	rep := &drift.Report{Features: features}
	assessment := drift.AssessRisk(rep)

	names := make([]core.FeatureName, 0, len(features))
	for n := range features {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := features[names[i]], features[names[j]]
		if a.DriftDetected != b.DriftDetected {
			return a.DriftDetected
		}
		return names[i] < names[j]
	})

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "**Risk level: %s** — %d of %d features drifted (%.2f%%)\n\n",
		assessment.RiskLevel, assessment.DriftedCount, assessment.TotalFeatures, assessment.DriftPercentage)

	b.WriteString("| Feature | p-value | Statistic | Drift | Type |\n")
	b.WriteString("|---------|---------|-----------|-------|------|\n")
	for _, n := range names {
		f := features[n]
		flag := "no"
		if f.DriftDetected {
			flag = "**yes**"
		}
		fmt.Fprintf(&b, "| %s | %.4g | %.4g | %s | %s |\n", n, f.PValue, f.Statistic, flag, f.Type)
	}

	b.WriteString("\n[Back to all reports](/)\n")
	return b.String()
}
