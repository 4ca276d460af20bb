package colfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderText renders a result set as aligned monospaced text: a header
// row, a rule of dashes sized to each column, and one line per row, with
// columns joined by two spaces. An empty row-set emits nothing at all.
//
// Rendering is two-pass: every value is first fed to its column's
// renderer, then each column's printed width is the larger of the
// renderer's width and the header text. Headers and dashes are
// left-bound even for numeric columns; only the data cells are
// right-justified.
//
// A cell whose renderer yields a multi-line string (an expanded
// inventory with several lots) occupies several physical lines; sibling
// columns pad the continuation lines with blanks.
func RenderText(w io.Writer, cols []Column, rows [][]any, ctx *Context) error {
	if len(rows) == 0 {
		return nil
	}
	for i, row := range rows {
		if len(row) != len(cols) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrColumnCount, i, len(row), len(cols))
		}
	}

	renderers := make([]Renderer, len(cols))
	for i, col := range cols {
		renderers[i] = NewRenderer(col.Kind, ctx)
	}
	for _, row := range rows {
		for i, v := range row {
			renderers[i].Update(v)
		}
	}
	widths := make([]int, len(cols))
	header := make([]string, len(cols))
	rule := make([]string, len(cols))
	for i, col := range cols {
		renderers[i].Prepare()
		widths[i] = renderers[i].Width()
		if w := runewidth.StringWidth(col.Name); w > widths[i] {
			widths[i] = w
		}
		header[i] = padRight(col.Name, widths[i])
		rule[i] = strings.Repeat("-", widths[i])
	}

	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, rule); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, renderers, widths, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, renderers []Renderer, widths []int, row []any) error {
	cells := make([][]string, len(row))
	height := 1
	for i, v := range row {
		cells[i] = strings.Split(renderers[i].Format(v), "\n")
		if len(cells[i]) > height {
			height = len(cells[i])
		}
	}
	for line := 0; line < height; line++ {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if line < len(cell) {
				parts[i] = padRight(cell[line], widths[i])
			} else {
				parts[i] = spaces(widths[i])
			}
		}
		if err := writeLine(w, parts); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, cells []string) error {
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	return err
}
