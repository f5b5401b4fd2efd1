package report

import (
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"godrift/domain/drift"
)

func sampleReport() *drift.Report {
	rep := drift.NewReport()
	rep.Add("Age", drift.FeatureResult{
		PValue:        0.0412,
		Statistic:     0.31,
		DriftDetected: true,
		Type:          drift.TypeNumerical,
	})
	rep.Add("HasCrCard", drift.FeatureResult{
		PValue:    0.87,
		Statistic: 0.02,
		Type:      drift.TypeCategorical,
	})
	return rep
}

func TestWriter_RoundTrip(t *testing.T) {
	w := NewWriter(t.TempDir())
	rep := sampleReport()

	path, err := w.Write(rep)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := w.Load(filepath.Base(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != rep.Size() {
		t.Fatalf("round-trip lost features: got %d, want %d", len(loaded), rep.Size())
	}
	for name, want := range rep.Features {
		got, ok := loaded[name]
		if !ok {
			t.Fatalf("feature %s missing after round-trip", name)
		}
		if math.Abs(got.PValue-want.PValue) > 1e-12 || math.Abs(got.Statistic-want.Statistic) > 1e-12 {
			t.Fatalf("feature %s values changed: got %+v, want %+v", name, got, want)
		}
		if got.DriftDetected != want.DriftDetected || got.Type != want.Type {
			t.Fatalf("feature %s flags changed: got %+v, want %+v", name, got, want)
		}
	}
}

func TestWriter_ArtifactNamesNeverCollide(t *testing.T) {
	w := NewWriter(t.TempDir())
	rep := sampleReport()

	pattern := regexp.MustCompile(`^drift_\d{8}_\d{6}_[0-9a-f]{8}\.json$`)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		path, err := w.Write(rep)
		if err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		name := filepath.Base(path)
		if !pattern.MatchString(name) {
			t.Fatalf("artifact name %q does not match naming scheme", name)
		}
		if seen[name] {
			t.Fatalf("artifact name %q collided within one second", name)
		}
		seen[name] = true
	}
}

func TestWriter_WriteFailureLeavesReportUsable(t *testing.T) {
	// A regular file where the output directory should be makes MkdirAll fail.
	blocked := filepath.Join(t.TempDir(), "blocked")
	writeFile(t, blocked)
	w := NewWriter(filepath.Join(blocked, "sub"))

	rep := sampleReport()
	_, err := w.Write(rep)
	if err == nil {
		t.Fatalf("expected write failure")
	}
	if rep.Size() != 2 {
		t.Fatalf("in-memory report mutated by failed write")
	}
}

func TestWriter_ListFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	for i := 0; i < 3; i++ {
		if _, err := w.Write(sampleReport()); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	writeFile(t, filepath.Join(dir, "unrelated.txt"))

	names, err := w.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 reports, got %d (%v)", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if strings.Compare(names[i-1], names[i]) < 0 {
			t.Fatalf("reports not newest-first: %v", names)
		}
	}
}

func TestWriter_LoadRejectsPathTraversal(t *testing.T) {
	w := NewWriter(t.TempDir())
	if _, err := w.Load("../../etc/passwd"); err == nil {
		t.Fatalf("expected traversal name to be rejected")
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
