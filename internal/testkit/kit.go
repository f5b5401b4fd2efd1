package testkit

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalSample draws n values from N(mu, sigma) with a fixed seed so tests
// are deterministic across runs.
func NormalSample(n int, mu, sigma float64, seed uint64) []float64 {
	dist := distuv.Normal{
		Mu:    mu,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, 0),
	}
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = dist.Rand()
	}
	return sample
}

// Repeat tiles a base pattern count times, handy for exactly-identical
// reference/production scenarios.
func Repeat(pattern []float64, count int) []float64 {
	out := make([]float64, 0, len(pattern)*count)
	for i := 0; i < count; i++ {
		out = append(out, pattern...)
	}
	return out
}

// WriteCSV writes named columns to a CSV fixture under dir and returns the
// file path. Columns may have differing lengths; short columns pad with
// empty cells, which the loader treats as missing.
func WriteCSV(dir, name string, columns map[string][]float64, order []string) (string, error) {
	rows := 0
	for _, col := range order {
		if len(columns[col]) > rows {
			rows = len(columns[col])
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(order, ","))
	b.WriteByte('\n')
	for i := 0; i < rows; i++ {
		cells := make([]string, len(order))
		for j, col := range order {
			if i < len(columns[col]) {
				cells[j] = fmt.Sprintf("%g", columns[col][i])
			}
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}
