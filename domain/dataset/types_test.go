package dataset

import (
	"math"
	"testing"

	"godrift/domain/core"
)

func TestSharedFeatures_ExcludesLabelAndMissingColumns(t *testing.T) {
	ref := NewTable([]Column{
		{Name: "Age", Values: []float64{30, 40, 50}},
		{Name: "Balance", Values: []float64{100, 200, 300}},
		{Name: "Exited", Values: []float64{0, 1, 0}},
	})
	prod := NewTable([]Column{
		{Name: "Age", Values: []float64{31, 39}},
		{Name: "Exited", Values: []float64{1, 1}},
		{Name: "NewColumn", Values: []float64{5, 6}},
	})

	shared := SharedFeatures(ref, prod, map[core.FeatureName]bool{"Exited": true})
	if len(shared) != 1 {
		t.Fatalf("expected exactly one shared feature, got %d", len(shared))
	}
	if shared[0].Name != "Age" {
		t.Fatalf("expected Age to survive, got %s", shared[0].Name)
	}
}

func TestSharedFeatures_EmptyIntersectionIsValid(t *testing.T) {
	ref := NewTable([]Column{{Name: "A", Values: []float64{1}}})
	prod := NewTable([]Column{{Name: "B", Values: []float64{2}}})

	if shared := SharedFeatures(ref, prod, nil); len(shared) != 0 {
		t.Fatalf("expected empty shared set, got %d columns", len(shared))
	}
}

func TestSample_DropsMissingIndependently(t *testing.T) {
	table := NewTable([]Column{
		{Name: "X", Values: []float64{1, math.NaN(), 3, math.NaN(), 5}},
	})

	sample := table.Sample("X")
	if len(sample) != 3 {
		t.Fatalf("expected 3 values after NaN removal, got %d", len(sample))
	}
	for _, v := range sample {
		if math.IsNaN(v) {
			t.Fatalf("NaN survived sample extraction")
		}
	}
}

func TestInferKind(t *testing.T) {
	binary := NewTable([]Column{
		{Name: "HasCrCard", Values: []float64{0, 1, 1, 0, math.NaN()}},
	})
	if kind, _ := binary.KindOf("HasCrCard"); kind != KindCategorical {
		t.Fatalf("0/1 column inferred as %s, want categorical", kind)
	}

	numeric := NewTable([]Column{
		{Name: "Balance", Values: []float64{10.5, 22.1, 30}},
	})
	if kind, _ := numeric.KindOf("Balance"); kind != KindNumerical {
		t.Fatalf("continuous column inferred as %s, want numerical", kind)
	}
}

func TestCategories_SortedUnion(t *testing.T) {
	cats := Categories([]float64{1, 0, 1}, []float64{2, 0})
	want := []float64{0, 1, 2}
	if len(cats) != len(want) {
		t.Fatalf("got %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("got %v, want %v", cats, want)
		}
	}
}
