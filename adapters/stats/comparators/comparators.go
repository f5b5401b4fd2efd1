package comparators

import (
	"godrift/domain/dataset"
)

// Outcome is the raw output of a two-sample test before classification.
type Outcome struct {
	Statistic  float64
	PValue     float64
	Degenerate bool
}

// Comparator runs one two-sample test between a reference sample and a
// production sample. Implementations are stateless and safe for concurrent
// use across features.
type Comparator interface {
	Name() string
	Kind() dataset.Kind
	Compare(ref, prod []float64) Outcome
}

// Registry maps column kinds to their comparator.
type Registry struct {
	byKind map[dataset.Kind]Comparator
}

// NewRegistry wires the default comparators: KS for numerical columns,
// chi-square homogeneity for categorical ones.
func NewRegistry() *Registry {
	r := &Registry{byKind: make(map[dataset.Kind]Comparator)}
	r.Register(NewKolmogorovSmirnov())
	r.Register(NewChiSquare())
	return r
}

// Register adds a comparator for its declared kind.
func (r *Registry) Register(c Comparator) {
	r.byKind[c.Kind()] = c
}

// For returns the comparator for a column kind. Unknown kinds fall back to
// the numerical comparator.
func (r *Registry) For(kind dataset.Kind) Comparator {
	if c, ok := r.byKind[kind]; ok {
		return c
	}
	return r.byKind[dataset.KindNumerical]
}

// degenerateOutcome is the fixed policy for comparisons the test cannot
// define: no statistic, no evidence of drift. Callers mark the feature type
// so the degeneracy stays visible in the report.
func degenerateOutcome() Outcome {
	return Outcome{Statistic: 0, PValue: 1, Degenerate: true}
}
