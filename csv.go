package colfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ReadCSV reads a CSV document and converts every cell to the declared
// kind of its column. When header is true the first record is skipped.
// Leading whitespace after a field separator is ignored, so columns of
// visually padded files convert cleanly.
//
// An empty cell becomes a null value for every kind but string and
// object, where it is the empty string; CSV has no other way to spell
// null. A cell that does not parse as its declared kind fails the whole
// read with an error wrapping ErrInvalidLiteral. Rows with the wrong
// number of fields fail with ErrColumnCount.
func ReadCSV(r io.Reader, cols []Column) ([][]any, error) {
	return readCSV(r, cols, false)
}

// ReadCSVHeader is ReadCSV for documents with a leading header record.
func ReadCSVHeader(r io.Reader, cols []Column) ([][]any, error) {
	return readCSV(r, cols, true)
}

func readCSV(r io.Reader, cols []Column, header bool) ([][]any, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	var rows [][]any
	for line := 0; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if header && line == 0 {
			continue
		}
		if len(record) != len(cols) {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d", ErrColumnCount, line, len(record), len(cols))
		}
		row := make([]any, len(cols))
		for i, cell := range record {
			v, err := Convert(cell, cols[i].Kind)
			if err != nil {
				return nil, fmt.Errorf("record %d, column %s: %w", line, cols[i].Name, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
}

// Convert parses a textual cell into a value of the given kind. String
// and object cells pass through unchanged; for every other kind an empty
// cell is null.
func Convert(s string, kind Kind) (any, error) {
	if kind == KindString || kind == KindObject {
		return s, nil
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	switch kind {
	case KindBool:
		return ParseBool(s)
	case KindDate:
		return ParseDate(s)
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer %q", ErrInvalidLiteral, s)
		}
		return n, nil
	case KindDecimal:
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: decimal %q", ErrInvalidLiteral, s)
		}
		return d, nil
	case KindAmount:
		return ParseAmount(s)
	case KindPosition:
		return ParsePosition(s)
	case KindInventory:
		return ParseInventory(s)
	case KindSet:
		members := strings.Split(s, ",")
		for i, m := range members {
			members[i] = strings.TrimSpace(m)
		}
		return NewSet(members...), nil
	default:
		return s, nil
	}
}

// RenderCSV writes a result set as CSV: a header record of column names,
// then one record per row with every value in its natural, unaligned
// string form. Like RenderText, an empty row-set emits nothing.
func RenderCSV(w io.Writer, cols []Column, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}
	if err := cw.Write(names); err != nil {
		return err
	}
	record := make([]string, len(cols))
	for i, row := range rows {
		if len(row) != len(cols) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrColumnCount, i, len(row), len(cols))
		}
		for j, v := range row {
			record[j] = display(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
