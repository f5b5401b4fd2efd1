package comparators

import (
	"math"
	"testing"

	"godrift/internal/testkit"
)

func TestKS_IdenticalSamplesShowNoDrift(t *testing.T) {
	sample := testkit.NormalSample(500, 0, 1, 7)
	other := append([]float64(nil), sample...)

	ks := NewKolmogorovSmirnov()
	out := ks.Compare(sample, other)

	if out.Statistic > 1e-12 {
		t.Fatalf("expected statistic 0 for identical samples, got %v", out.Statistic)
	}
	if math.Abs(out.PValue-1) > 1e-9 {
		t.Fatalf("expected p-value 1 for identical samples, got %v", out.PValue)
	}
	if out.Degenerate {
		t.Fatalf("identical non-empty samples must not be degenerate")
	}
}

func TestKS_SeparatedDistributionsDrift(t *testing.T) {
	ref := testkit.NormalSample(1000, 0, 1, 42)
	prod := testkit.NormalSample(1000, 5, 1, 43)

	ks := NewKolmogorovSmirnov()
	out := ks.Compare(ref, prod)

	if out.Statistic <= 0.8 {
		t.Fatalf("expected statistic > 0.8 for N(0,1) vs N(5,1), got %v", out.Statistic)
	}
	if out.PValue > 1e-6 {
		t.Fatalf("expected p-value near zero, got %v", out.PValue)
	}
}

func TestKS_PValueWithinUnitInterval(t *testing.T) {
	ref := testkit.NormalSample(300, 0, 1, 1)
	prod := testkit.NormalSample(280, 0.2, 1.1, 2)

	ks := NewKolmogorovSmirnov()
	out := ks.Compare(ref, prod)

	if out.PValue < 0 || out.PValue > 1 {
		t.Fatalf("p-value %v outside [0, 1]", out.PValue)
	}
	if out.Statistic < 0 || out.Statistic > 1 {
		t.Fatalf("statistic %v outside [0, 1]", out.Statistic)
	}
}

func TestKS_EmptySampleIsDegenerate(t *testing.T) {
	ks := NewKolmogorovSmirnov()

	for _, tc := range []struct {
		name      string
		ref, prod []float64
	}{
		{"empty production", []float64{1, 2, 3}, nil},
		{"empty reference", nil, []float64{1, 2, 3}},
		{"both empty", nil, nil},
	} {
		out := ks.Compare(tc.ref, tc.prod)
		if !out.Degenerate {
			t.Fatalf("%s: expected degenerate outcome", tc.name)
		}
		if out.Statistic != 0 || out.PValue != 1 {
			t.Fatalf("%s: degenerate outcome must be statistic=0 p=1, got %v/%v",
				tc.name, out.Statistic, out.PValue)
		}
	}
}

func TestKS_UnequalSampleSizes(t *testing.T) {
	ref := testkit.NormalSample(900, 0, 1, 11)
	prod := testkit.NormalSample(137, 0, 1, 12)

	ks := NewKolmogorovSmirnov()
	out := ks.Compare(ref, prod)

	// Same distribution, different sizes: the test should not cry drift.
	if out.PValue < 0.001 {
		t.Fatalf("expected large p-value for same-distribution samples, got %v", out.PValue)
	}
}

func TestKolmogorovSurvival_Boundaries(t *testing.T) {
	if p := kolmogorovSurvival(0); p != 1 {
		t.Fatalf("Q(0) = %v, want 1", p)
	}
	// Classic reference point: Q(1.36) is about 0.049.
	if p := kolmogorovSurvival(1.36); math.Abs(p-0.049) > 0.002 {
		t.Fatalf("Q(1.36) = %v, want ~0.049", p)
	}
	if p := kolmogorovSurvival(5); p > 1e-9 {
		t.Fatalf("Q(5) = %v, want ~0", p)
	}
}
