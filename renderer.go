package colfmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// ObjectRenderer is the fallback for any column kind without a specialized
// renderer. Values render as their natural display string, left-justified
// to the widest string observed. Null renders as a blank cell.
type ObjectRenderer struct {
	width int
}

func (r *ObjectRenderer) Update(v any) {
	if w := runewidth.StringWidth(display(v)); w > r.width {
		r.width = w
	}
}

func (r *ObjectRenderer) Prepare() {}

func (r *ObjectRenderer) Width() int { return r.width }

func (r *ObjectRenderer) Format(v any) string {
	return padRight(display(v), r.width)
}

// BoolRenderer renders TRUE and FALSE left-justified in a column of fixed
// width 5, regardless of which literals were actually observed.
type BoolRenderer struct{}

const boolWidth = 5 // len("FALSE")

func (r *BoolRenderer) Update(v any) {}

func (r *BoolRenderer) Prepare() {}

func (r *BoolRenderer) Width() int { return boolWidth }

func (r *BoolRenderer) Format(v any) string {
	if v == nil {
		return spaces(boolWidth)
	}
	if v.(bool) {
		return "TRUE "
	}
	return "FALSE"
}

// StringRenderer left-justifies strings to the widest string observed.
type StringRenderer struct {
	width int
}

func (r *StringRenderer) Update(v any) {
	if v == nil {
		return
	}
	if w := runewidth.StringWidth(v.(string)); w > r.width {
		r.width = w
	}
}

func (r *StringRenderer) Prepare() {}

func (r *StringRenderer) Width() int { return r.width }

func (r *StringRenderer) Format(v any) string {
	if v == nil {
		return spaces(r.width)
	}
	return padRight(v.(string), r.width)
}

// SetRenderer renders a set of strings as its members joined by the
// context's list separator. Members are sorted, so repeated renderings of
// the same set are identical.
type SetRenderer struct {
	ctx   *Context
	width int
}

func (r *SetRenderer) Update(v any) {
	if v == nil {
		return
	}
	if w := runewidth.StringWidth(r.join(v.(Set))); w > r.width {
		r.width = w
	}
}

func (r *SetRenderer) Prepare() {}

func (r *SetRenderer) Width() int { return r.width }

func (r *SetRenderer) Format(v any) string {
	if v == nil {
		return spaces(r.width)
	}
	return padRight(r.join(v.(Set)), r.width)
}

func (r *SetRenderer) join(s Set) string {
	return strings.Join(s.Members(), r.ctx.listsep())
}

// DateRenderer renders ISO-8601 calendar dates. The form is inherently
// fixed-width, so there is nothing to observe.
type DateRenderer struct{}

const dateWidth = len(dateLayout)

func (r *DateRenderer) Update(v any) {}

func (r *DateRenderer) Prepare() {}

func (r *DateRenderer) Width() int { return dateWidth }

func (r *DateRenderer) Format(v any) string {
	if v == nil {
		return spaces(dateWidth)
	}
	return v.(time.Time).Format(dateLayout)
}

// IntegerRenderer right-justifies integers to the number of digits of the
// largest observed magnitude, plus a sign column if any negative value was
// seen. A value formatted after Prepare that needs more digits than were
// ever observed is emitted in full rather than truncated; the over-wide
// cell is tolerated as a display artifact, never an error.
type IntegerRenderer struct {
	digits int
	sign   bool
	width  int
}

func (r *IntegerRenderer) Update(v any) {
	if v == nil {
		return
	}
	n := asInt(v)
	d := len(strconv.FormatInt(n, 10))
	if n < 0 {
		r.sign = true
		d--
	}
	if d > r.digits {
		r.digits = d
	}
}

func (r *IntegerRenderer) Prepare() {
	r.width = r.digits
	if r.sign {
		r.width++
	}
	if r.width < 1 {
		r.width = 1
	}
}

func (r *IntegerRenderer) Width() int { return r.width }

func (r *IntegerRenderer) Format(v any) string {
	if v == nil {
		return spaces(r.width)
	}
	return fmt.Sprintf("%*d", r.width, asInt(v))
}

func asInt(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	default:
		panic(fmt.Sprintf("colfmt: not an integer: %T", v))
	}
}

func padRight(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + spaces(pad)
	}
	return s
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
