package colfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderMarkdown writes a result set as a GitHub-flavored Markdown table.
// Values render in their natural single-line string form; numeric columns
// get right-alignment markers in the separator row. An empty row-set
// emits nothing.
func RenderMarkdown(w io.Writer, cols []Column, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != len(cols) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrColumnCount, i, len(row), len(cols))
		}
		cells[i] = make([]string, len(cols))
		for j, v := range row {
			cells[i][j] = display(v)
		}
	}

	// Column widths, minimum 3 for the alignment markers.
	widths := make([]int, len(cols))
	for j, col := range cols {
		widths[j] = runewidth.StringWidth(col.Name)
	}
	for _, row := range cells {
		for j, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}
	for j := range widths {
		if widths[j] < 3 {
			widths[j] = 3
		}
	}

	header := make([]string, len(cols))
	sep := make([]string, len(cols))
	for j, col := range cols {
		header[j] = padRight(col.Name, widths[j])
		if numericKind(col.Kind) {
			sep[j] = strings.Repeat("-", widths[j]-1) + ":"
		} else {
			sep[j] = strings.Repeat("-", widths[j])
		}
	}
	if err := writeMarkdownRow(w, header); err != nil {
		return err
	}
	if err := writeMarkdownRow(w, sep); err != nil {
		return err
	}
	for _, row := range cells {
		padded := make([]string, len(row))
		for j, cell := range row {
			padded[j] = padRight(cell, widths[j])
		}
		if err := writeMarkdownRow(w, padded); err != nil {
			return err
		}
	}
	return nil
}

func numericKind(k Kind) bool {
	switch k {
	case KindInt, KindDecimal, KindAmount, KindPosition, KindInventory:
		return true
	}
	return false
}

func writeMarkdownRow(w io.Writer, cells []string) error {
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	return err
}
