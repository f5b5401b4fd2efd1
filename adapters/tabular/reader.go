package tabular

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"godrift/domain/core"
	"godrift/domain/dataset"
	"godrift/internal/errors"
)

// Reader loads column-oriented tabular files into dataset tables. CSV and
// Excel (Sheet1) sources are supported; the first row is always the header.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given file, picking the format from the
// extension.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads the file into a table. A missing file is the fatal
// input-not-found case: the whole check aborts, no partial report.
func (r *Reader) Read() (*dataset.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.InputNotFound(r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 1 {
		return nil, errors.InvalidInput("dataset has no header row")
	}

	return buildTable(rows), nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", r.filePath)
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read Sheet1 of %s", r.filePath)
	}
	return rows, nil
}

// buildTable converts raw string rows into a typed column table. Cells that
// do not parse as numbers are recorded as NaN so each sample can drop its
// own missing values independently.
func buildTable(rows [][]string) *dataset.Table {
	header := rows[0]
	columns := make([]dataset.Column, len(header))
	for i, name := range header {
		columns[i] = dataset.Column{
			Name:   core.FeatureName(strings.TrimSpace(name)),
			Values: make([]float64, 0, len(rows)-1),
		}
	}

	for _, row := range rows[1:] {
		for i := range columns {
			columns[i].Values = append(columns[i].Values, parseCell(row, i))
		}
	}

	return dataset.NewTable(columns)
}

func parseCell(row []string, i int) float64 {
	if i >= len(row) {
		return math.NaN()
	}
	cell := strings.TrimSpace(row[i])
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
