// Package excel wraps workbook parsing and generation for the roster
// import/export endpoints.
package excel

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// UploadFieldName is the multipart form field carrying the workbook.
	UploadFieldName = "excelFile"
	// MaxUploadSize caps uploaded workbooks at 5MB.
	MaxUploadSize = 5 << 20
)

var (
	ErrUnsupportedFile = errors.New("only .xls and .xlsx files are supported")
	ErrEmptyWorkbook   = errors.New("workbook has no data rows")
)

// AllowedExtension reports whether the filename carries a supported
// spreadsheet extension.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls", ".xlsx":
		return true
	}
	return false
}

// ParseRows reads the first worksheet and returns one map per data row,
// keyed by the header row. Cells are read as raw values so large numeric
// identifiers (symbol numbers, registration IDs) keep their full digits
// instead of collapsing to scientific notation.
func ParseRows(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyWorkbook
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var out []map[string]string
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			var cell string
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			if cell != "" {
				empty = false
			}
			record[header] = cell
		}
		// Trailing blank rows are common in hand-edited sheets
		if empty {
			continue
		}
		out = append(out, record)
	}

	if len(out) == 0 {
		return nil, ErrEmptyWorkbook
	}
	return out, nil
}

// WriteSheet builds a single-sheet workbook from a header row and data
// rows, used for roster exports.
func WriteSheet(sheetName string, headers []string, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
