package comparators

import (
	"gonum.org/v1/gonum/stat/distuv"

	"godrift/domain/dataset"
)

// ChiSquare runs a two-sample homogeneity test for categorical columns: the
// observed category frequencies of both samples are compared against the
// pooled expectation. Low-cardinality indicator columns (0/1 flags) get this
// instead of KS, whose statistic degrades on heavily tied data.
type ChiSquare struct{}

// NewChiSquare creates the chi-square comparator.
func NewChiSquare() *ChiSquare {
	return &ChiSquare{}
}

// Name returns the test name.
func (c *ChiSquare) Name() string {
	return "chi_square"
}

// Kind returns the column kind this comparator handles.
func (c *ChiSquare) Kind() dataset.Kind {
	return dataset.KindCategorical
}

// Compare runs the test. An empty sample on either side, or a single shared
// category, makes the test undefined and yields the degenerate outcome.
func (c *ChiSquare) Compare(ref, prod []float64) Outcome {
	if len(ref) == 0 || len(prod) == 0 {
		return degenerateOutcome()
	}

	cats := dataset.Categories(ref, prod)
	if len(cats) < 2 {
		// Both samples sit on one value: identical distributions by
		// construction, nothing to test.
		return Outcome{Statistic: 0, PValue: 1}
	}

	refCounts := countByCategory(ref, cats)
	prodCounts := countByCategory(prod, cats)

	n1 := float64(len(ref))
	n2 := float64(len(prod))
	total := n1 + n2

	chiSq := 0.0
	for i := range cats {
		pooled := refCounts[i] + prodCounts[i]
		expRef := n1 * pooled / total
		expProd := n2 * pooled / total
		if expRef > 0 {
			diff := refCounts[i] - expRef
			chiSq += diff * diff / expRef
		}
		if expProd > 0 {
			diff := prodCounts[i] - expProd
			chiSq += diff * diff / expProd
		}
	}

	df := float64(len(cats) - 1)
	dist := distuv.ChiSquared{K: df}
	pValue := 1 - dist.CDF(chiSq)
	if pValue < 0 {
		pValue = 0
	}

	return Outcome{Statistic: chiSq, PValue: pValue}
}

// countByCategory tallies sample values against the shared category list.
func countByCategory(sample []float64, cats []float64) []float64 {
	pos := make(map[float64]int, len(cats))
	for i, c := range cats {
		pos[c] = i
	}
	counts := make([]float64, len(cats))
	for _, v := range sample {
		if i, ok := pos[v]; ok {
			counts[i]++
		}
	}
	return counts
}
