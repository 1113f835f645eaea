// Package tabular reads delimited text and Excel workbooks into the
// domain table model, inferring each column's kind at load time.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"csvscope/domain/table"
	"csvscope/internal"
	"csvscope/internal/errors"

	"github.com/xuri/excelize/v2"
)

// kindSampleSize bounds how many rows type inference examines.
const kindSampleSize = 100

// Reader handles reading CSV and Excel files
type Reader struct {
	maxFileSize int64
	logger      *internal.Logger
}

// NewReader creates a new file reader. A maxFileSize of 0 disables the
// size guard.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		logger:      internal.DefaultLogger,
	}
}

// ReadTable parses the file at path into a table, replacing nothing on
// failure: the caller only swaps its dataset on a nil error.
func (r *Reader) ReadTable(path string) (*table.Table, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.LoadFailed(fmt.Sprintf("file not found: %s", path), nil)
	}
	if err != nil {
		return nil, errors.LoadFailed("failed to stat file", err)
	}
	if r.maxFileSize > 0 && info.Size() > r.maxFileSize {
		return nil, errors.LoadFailed(
			fmt.Sprintf("file size %d bytes exceeds maximum allowed size %d bytes", info.Size(), r.maxFileSize), nil)
	}

	var raw *RawData
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		raw, err = r.readCSV(path)
	case ".xlsx":
		raw, err = r.readExcel(path)
	case ".xls":
		// excelize only reads OOXML workbooks.
		return nil, errors.LoadFailed("legacy .xls workbooks are not supported, save the file as .xlsx", nil)
	default:
		return nil, errors.LoadFailed(fmt.Sprintf("unsupported file type: %s", filepath.Ext(path)), nil)
	}
	if err != nil {
		return nil, err
	}

	t := table.New(filepath.Base(path), buildColumns(raw))
	r.logger.Info("[Reader] loaded %s (%d columns, %d rows, id=%s)",
		t.Source, t.ColumnCount(), t.RowCount(), t.ID)
	return t, nil
}

// readCSV reads comma-separated data with the first row as headers.
func (r *Reader) readCSV(path string) (*RawData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.LoadFailed("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.LoadFailed("failed to parse CSV file", err)
	}
	if len(rows) == 0 {
		return nil, errors.LoadFailed("CSV file is empty", nil)
	}
	return splitHeader(rows), nil
}

// readExcel reads Sheet1 of an Excel workbook with the first row as headers.
func (r *Reader) readExcel(path string) (*RawData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.LoadFailed("failed to open Excel file", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.LoadFailed("failed to read Sheet1", err)
	}
	if len(rows) == 0 {
		return nil, errors.LoadFailed("Excel file is empty", nil)
	}
	return splitHeader(rows), nil
}

func splitHeader(rows [][]string) *RawData {
	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}
	return &RawData{
		Headers: headers,
		Rows:    rows[1:],
	}
}

// buildColumns converts raw rows into typed columns. Rows shorter than
// the header are padded with missing cells.
func buildColumns(raw *RawData) []table.Column {
	columns := make([]table.Column, len(raw.Headers))
	for i, name := range raw.Headers {
		cells := make([]table.Cell, len(raw.Rows))
		for j, row := range raw.Rows {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			if value == "" {
				cells[j] = table.Cell{Missing: true}
			} else {
				cells[j] = table.Cell{Raw: value}
			}
		}
		columns[i] = table.Column{
			Name:  name,
			Kind:  inferKind(cells),
			Cells: cells,
		}
	}
	return columns
}

// inferKind samples the leading non-missing cells and declares the
// column numeric, boolean, or text. The declared kind is fixed for the
// lifetime of the table.
func inferKind(cells []table.Cell) table.Kind {
	sampled := 0
	allNumeric := true
	allBoolean := true

	for _, cell := range cells {
		if sampled >= kindSampleSize {
			break
		}
		if cell.Missing {
			continue
		}
		sampled++

		if _, err := strconv.ParseFloat(cell.Raw, 64); err != nil {
			allNumeric = false
		}
		if !isBooleanWord(cell.Raw) {
			allBoolean = false
		}
	}

	if sampled == 0 {
		return table.KindText
	}
	if allBoolean {
		return table.KindBoolean
	}
	if allNumeric {
		return table.KindNumeric
	}
	return table.KindText
}

func isBooleanWord(value string) bool {
	switch strings.ToLower(value) {
	case "true", "false", "yes", "no", "y", "n":
		return true
	}
	return false
}
