package dataset

import (
	"math"
	"sort"

	"godrift/domain/core"
)

// Kind is the semantic type of a feature column, decided once at load time.
type Kind string

const (
	KindNumerical   Kind = "numerical"
	KindCategorical Kind = "categorical"
)

// Column holds one named feature column. Missing or unparseable cells are
// stored as NaN so sample extraction can drop them per dataset.
type Column struct {
	Name   core.FeatureName
	Kind   Kind
	Values []float64
}

// Table is a column-oriented dataset with a declared schema. Columns keep
// their header order; lookups go through the index, never by scanning.
type Table struct {
	columns []Column
	index   map[core.FeatureName]int
}

// NewTable builds a table from ordered columns and infers each column's kind.
func NewTable(columns []Column) *Table {
	t := &Table{
		columns: columns,
		index:   make(map[core.FeatureName]int, len(columns)),
	}
	for i := range t.columns {
		if t.columns[i].Kind == "" {
			t.columns[i].Kind = inferKind(t.columns[i].Values)
		}
		t.index[t.columns[i].Name] = i
	}
	return t
}

// ColumnNames returns column names in header order.
func (t *Table) ColumnNames() []core.FeatureName {
	names := make([]core.FeatureName, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name core.FeatureName) bool {
	_, ok := t.index[name]
	return ok
}

// KindOf returns the declared kind for the named column.
func (t *Table) KindOf(name core.FeatureName) (Kind, bool) {
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.columns[i].Kind, true
}

// ColumnCount returns the number of declared columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// RowCount returns the number of data rows (all columns share row count).
func (t *Table) RowCount() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].Values)
}

// Sample returns the named column with missing values removed. The result is
// a fresh slice; callers may sort or mutate it freely.
func (t *Table) Sample(name core.FeatureName) []float64 {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	sample := make([]float64, 0, len(t.columns[i].Values))
	for _, v := range t.columns[i].Values {
		if !math.IsNaN(v) {
			sample = append(sample, v)
		}
	}
	return sample
}

// SharedFeatures returns the columns present in both tables minus the
// excluded set, in the reference table's header order. An empty result is a
// valid degenerate outcome, not an error. Kinds come from the reference
// table: the reference is what the model was built against, so it owns the
// schema.
func SharedFeatures(ref, prod *Table, excluded map[core.FeatureName]bool) []Column {
	shared := make([]Column, 0, len(ref.columns))
	for _, c := range ref.columns {
		if excluded[c.Name] {
			continue
		}
		if !prod.HasColumn(c.Name) {
			continue
		}
		shared = append(shared, Column{Name: c.Name, Kind: c.Kind})
	}
	return shared
}

// inferKind classifies a column: at most two distinct finite values makes it
// categorical (0/1 indicator columns), anything else is numerical.
func inferKind(values []float64) Kind {
	distinct := make(map[float64]bool)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		distinct[v] = true
		if len(distinct) > 2 {
			return KindNumerical
		}
	}
	return KindCategorical
}

// Categories returns the sorted distinct finite values across samples. Used
// by the chi-square comparator to build frequency tables.
func Categories(samples ...[]float64) []float64 {
	distinct := make(map[float64]bool)
	for _, sample := range samples {
		for _, v := range sample {
			if !math.IsNaN(v) {
				distinct[v] = true
			}
		}
	}
	cats := make([]float64, 0, len(distinct))
	for v := range distinct {
		cats = append(cats, v)
	}
	sort.Float64s(cats)
	return cats
}
