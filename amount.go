package colfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// AmountRenderer renders amounts as "NUMBER CURRENCY": the number aligned
// on its decimal point and right-bound, the currency code left-justified,
// one space between them. The two sub-widths are computed independently
// across all observed amounts. The fractional budget of the number is at
// least the context's precision for the amount's currency, so a column
// holding a single narrow sample still reserves the fractional digits
// seen for that currency elsewhere in the result set.
type AmountRenderer struct {
	num   decimalAligner
	cur   int
	seen  bool
	width int
}

func newAmountRenderer(ctx *Context) *AmountRenderer {
	return &AmountRenderer{num: decimalAligner{ctx: ctx}}
}

func (r *AmountRenderer) Update(v any) {
	if v == nil {
		return
	}
	r.observe(v.(Amount))
}

func (r *AmountRenderer) observe(a Amount) {
	r.seen = true
	r.num.observe(a.Number, a.Currency)
	if w := runewidth.StringWidth(a.Currency); w > r.cur {
		r.cur = w
	}
}

func (r *AmountRenderer) Prepare() {
	r.num.prepare()
	if r.seen {
		r.width = r.num.width + 1 + r.cur
	}
}

func (r *AmountRenderer) Width() int { return r.width }

func (r *AmountRenderer) Format(v any) string {
	if v == nil {
		return spaces(r.width)
	}
	a := v.(Amount)
	return r.num.render(a.Number) + " " + padRight(a.Currency, r.cur)
}

// PositionRenderer renders positions as "UNITS" or "UNITS {COST}". The
// units and cost amounts are tracked by independent sub-renderers. When
// any observed position carries a cost, every row reserves the cost
// region; rows without a cost pad it with spaces.
type PositionRenderer struct {
	units   *AmountRenderer
	cost    *AmountRenderer
	hasCost bool
	width   int
}

func newPositionRenderer(ctx *Context) *PositionRenderer {
	return &PositionRenderer{
		units: newAmountRenderer(ctx),
		cost:  newAmountRenderer(ctx),
	}
}

func (r *PositionRenderer) Update(v any) {
	if v == nil {
		return
	}
	r.observe(v.(Position))
}

func (r *PositionRenderer) observe(p Position) {
	r.units.observe(p.Units)
	if p.Cost != nil {
		r.hasCost = true
		r.cost.observe(*p.Cost)
	}
}

func (r *PositionRenderer) Prepare() {
	r.units.Prepare()
	r.cost.Prepare()
	r.width = r.units.Width()
	if r.hasCost {
		r.width += r.costRegion()
	}
}

// costRegion is the width of " {COST}".
func (r *PositionRenderer) costRegion() int {
	return r.cost.Width() + 3
}

func (r *PositionRenderer) Width() int { return r.width }

func (r *PositionRenderer) Format(v any) string {
	if v == nil {
		return spaces(r.width)
	}
	p := v.(Position)
	var b strings.Builder
	b.WriteString(r.units.Format(p.Units))
	if r.hasCost {
		if p.Cost != nil {
			b.WriteString(" {")
			b.WriteString(r.cost.Format(*p.Cost))
			b.WriteString("}")
		} else {
			b.WriteString(spaces(r.costRegion()))
		}
	}
	return b.String()
}

// InventoryRenderer renders an inventory as one line per position, each
// line laid out by a single shared PositionRenderer so that the number,
// currency, and cost sub-fields align across all positions of all
// inventories in the column, not just within one row. Multi-position
// inventories yield a multi-line string; single-position inventories are
// identical to the position case.
type InventoryRenderer struct {
	pos *PositionRenderer
}

func (r *InventoryRenderer) Update(v any) {
	if v == nil {
		return
	}
	for _, pos := range v.(Inventory) {
		r.pos.observe(pos)
	}
}

func (r *InventoryRenderer) Prepare() {
	r.pos.Prepare()
}

func (r *InventoryRenderer) Width() int { return r.pos.Width() }

func (r *InventoryRenderer) Format(v any) string {
	if v == nil {
		return spaces(r.Width())
	}
	inv := v.(Inventory)
	if len(inv) == 0 {
		return spaces(r.Width())
	}
	lines := make([]string, len(inv))
	for i, pos := range inv {
		lines[i] = r.pos.Format(pos)
	}
	return strings.Join(lines, "\n")
}
