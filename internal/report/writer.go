package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"godrift/domain/core"
	"godrift/domain/drift"
	"godrift/internal/errors"
)

// Writer persists drift reports as JSON artifacts under a configured
// directory. Writes are atomic from the caller's point of view: the report
// lands in a temp file first and becomes visible only on rename.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer rooted at the given directory.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Write persists the report and returns the artifact path. Names carry a
// second-resolution timestamp plus a unique suffix, so concurrent checks in
// the same second never race on a path. On failure the error is a
// WriteFailure and the in-memory report is untouched.
func (w *Writer) Write(r *drift.Report) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", errors.WriteFailure(w.outputDir, err)
	}

	name := fmt.Sprintf("drift_%s_%s.json", r.CreatedAt.ArtifactStamp(), core.ShortID())
	path := filepath.Join(w.outputDir, name)

	payload, err := json.MarshalIndent(r.Features, "", "  ")
	if err != nil {
		return "", errors.WriteFailure(path, err)
	}

	tmp, err := os.CreateTemp(w.outputDir, ".drift_*.tmp")
	if err != nil {
		return "", errors.WriteFailure(path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", errors.WriteFailure(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", errors.WriteFailure(path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", errors.WriteFailure(path, err)
	}

	return path, nil
}

// List returns persisted artifact names, newest first.
func (w *Writer) List() ([]string, error) {
	entries, err := os.ReadDir(w.outputDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list reports in %s", w.outputDir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), "drift_") && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Load reads a persisted artifact back into feature results. The base name
// is validated against the directory to keep path traversal out.
func (w *Writer) Load(name string) (map[core.FeatureName]drift.FeatureResult, error) {
	if name != filepath.Base(name) {
		return nil, errors.InvalidInput("report name must be a bare file name")
	}

	data, err := os.ReadFile(filepath.Join(w.outputDir, name))
	if os.IsNotExist(err) {
		return nil, errors.InputNotFound(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read report %s", name)
	}

	features := make(map[core.FeatureName]drift.FeatureResult)
	if err := json.Unmarshal(data, &features); err != nil {
		return nil, errors.Wrapf(err, "failed to parse report %s", name)
	}
	return features, nil
}
