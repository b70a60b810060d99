package dataio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dataset/array"
)

// ReadMatrix parses a whitespace separated numeric matrix, one sample per
// line. Blank lines and lines starting with '#' are skipped. A single column
// yields a rank-1 array.
func ReadMatrix(r io.Reader) (*array.Array, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row, err := parseRow(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	a, err := array.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if a.Rank() == 2 && a.Features() == 1 {
		return array.FromValues(a.Data()), nil
	}
	return a, nil
}

// WriteMatrix writes a as text, one sample per line with its features
// flattened. Shapes beyond rank 2 are not preserved.
func WriteMatrix(w io.Writer, a *array.Array) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < a.Len(); i++ {
		for k, v := range a.Row(i) {
			if k > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func parseRow(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}
