package comparators

import (
	"testing"

	"godrift/internal/testkit"
)

// binarySample builds n values with the given proportion of ones.
func binarySample(n int, onesRatio float64) []float64 {
	sample := make([]float64, n)
	ones := int(float64(n) * onesRatio)
	for i := 0; i < ones; i++ {
		sample[i] = 1
	}
	return sample
}

func TestChiSquare_SameProportionsShowNoDrift(t *testing.T) {
	ref := binarySample(500, 0.3)
	prod := binarySample(400, 0.3)

	cs := NewChiSquare()
	out := cs.Compare(ref, prod)

	if out.PValue < 0.5 {
		t.Fatalf("expected high p-value for matching proportions, got %v", out.PValue)
	}
}

func TestChiSquare_ShiftedProportionsDrift(t *testing.T) {
	ref := binarySample(500, 0.1)
	prod := binarySample(500, 0.6)

	cs := NewChiSquare()
	out := cs.Compare(ref, prod)

	if out.PValue > 0.001 {
		t.Fatalf("expected near-zero p-value for 10%% vs 60%% proportions, got %v", out.PValue)
	}
	if out.Statistic <= 0 {
		t.Fatalf("expected positive chi-square statistic, got %v", out.Statistic)
	}
}

func TestChiSquare_SingleCategoryIsNotDrift(t *testing.T) {
	ref := testkit.Repeat([]float64{1}, 50)
	prod := testkit.Repeat([]float64{1}, 80)

	cs := NewChiSquare()
	out := cs.Compare(ref, prod)

	if out.Statistic != 0 || out.PValue != 1 {
		t.Fatalf("single shared category: want statistic=0 p=1, got %v/%v", out.Statistic, out.PValue)
	}
}

func TestChiSquare_EmptySampleIsDegenerate(t *testing.T) {
	cs := NewChiSquare()
	out := cs.Compare(nil, binarySample(10, 0.5))
	if !out.Degenerate {
		t.Fatalf("expected degenerate outcome for empty reference")
	}
}
