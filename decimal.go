package colfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// decimalAligner accumulates the digit budget needed to align decimal
// numbers on their decimal point: the widest integer part, the widest
// fractional part, and whether a sign column is needed. The amount family
// reuses it with a currency key, which folds the context's per-currency
// precision into the fractional budget.
type decimalAligner struct {
	ctx   *Context
	ints  int
	frac  int
	sign  bool
	seen  bool
	width int
}

func (a *decimalAligner) observe(d decimal.Decimal, currency string) {
	a.seen = true
	if d.IsNegative() {
		a.sign = true
	}
	if n := intDigits(d); n > a.ints {
		a.ints = n
	}
	scale := fracDigits(d)
	if currency != "" {
		if p, ok := a.ctx.Precision(currency); ok && p > scale {
			scale = p
		}
	}
	if scale > a.frac {
		a.frac = scale
	}
}

func (a *decimalAligner) prepare() {
	if !a.seen {
		return
	}
	a.width = a.ints
	if a.sign {
		a.width++
	}
	if a.frac > 0 {
		a.width += 1 + a.frac
	}
}

// render formats d aligned on the decimal point: sign and integer part
// right-justified, fractional digits at the value's own scale truncated
// to the column scale, and the unused fractional region padded with
// spaces, not zeros.
func (a *decimalAligner) render(d decimal.Decimal) string {
	scale := fracDigits(d)
	if scale > a.frac {
		scale = a.frac
		d = d.Truncate(int32(scale))
	}
	whole, fractional, _ := strings.Cut(d.StringFixed(int32(scale)), ".")
	intWidth := a.ints
	if a.sign {
		intWidth++
	}
	var b strings.Builder
	if pad := intWidth - len(whole); pad > 0 {
		b.WriteString(spaces(pad))
	}
	b.WriteString(whole)
	if a.frac > 0 {
		if fractional == "" {
			b.WriteString(spaces(1 + a.frac))
		} else {
			b.WriteString(a.ctx.dot())
			b.WriteString(fractional)
			b.WriteString(spaces(a.frac - len(fractional)))
		}
	}
	return b.String()
}

func (a *decimalAligner) blank() string {
	return spaces(a.width)
}

// intDigits returns the number of digits in the integer part of d,
// at least 1.
func intDigits(d decimal.Decimal) int {
	return len(d.Abs().Truncate(0).String())
}

// fracDigits returns the scale of d as written: the number of fractional
// digits of its exact representation.
func fracDigits(d decimal.Decimal) int {
	if e := d.Exponent(); e < 0 {
		return int(-e)
	}
	return 0
}

// DecimalRenderer aligns arbitrary-precision decimals on their decimal
// point. The column scale is the maximum scale observed across all
// non-null values; values with a smaller scale keep their own number of
// fractional digits and are space-padded, values with a larger scale are
// truncated.
//
// Null cells are blank at the full column width — except in a virgin
// column that observed no non-null value at all, whose width is zero and
// whose nulls therefore render as empty strings.
type DecimalRenderer struct {
	num decimalAligner
}

func (r *DecimalRenderer) Update(v any) {
	if v == nil {
		return
	}
	r.num.observe(v.(decimal.Decimal), "")
}

func (r *DecimalRenderer) Prepare() {
	r.num.prepare()
}

func (r *DecimalRenderer) Width() int { return r.num.width }

func (r *DecimalRenderer) Format(v any) string {
	if v == nil {
		return r.num.blank()
	}
	return r.num.render(v.(decimal.Decimal))
}
