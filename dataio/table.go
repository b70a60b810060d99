package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-dataset/array"
)

// ReadCSV parses numeric CSV records into a (rows, columns) array. A first
// record that does not parse is treated as a header and skipped.
func ReadCSV(r io.Reader) (*array.Array, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return tableArray(records)
}

// WriteCSV writes a as CSV, one sample per record.
func WriteCSV(w io.Writer, a *array.Array) error {
	cw := csv.NewWriter(w)
	for i := 0; i < a.Len(); i++ {
		if err := cw.Write(formatRow(a.Row(i))); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadXLSX parses the rows of the first sheet of a workbook into a
// (rows, columns) array. A non-numeric first row is skipped as a header.
func ReadXLSX(r io.Reader) (*array.Array, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrFormat)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	return tableArray(rows)
}

// WriteXLSX writes a into the first sheet of a new workbook.
func WriteXLSX(w io.Writer, a *array.Array) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i := 0; i < a.Len(); i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := a.Row(i)
		values := make([]any, len(row))
		for k, v := range row {
			values[k] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("set row %d: %w", i, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func tableArray(records [][]string) (*array.Array, error) {
	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		row, err := parseRow(rec)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%w: row %d: %v", ErrFormat, i+1, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: table has no numeric rows", ErrFormat)
	}

	a, err := array.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return a, nil
}

func formatRow(row []float64) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}
