package colfmt

// Context carries the per-query rendering configuration. It is created
// once per result set, populated before rendering starts, and read-only
// from then on; a populated Context may be shared across concurrent
// renders of different result sets.
type Context struct {
	// ListSep joins the members of a set. Default ",".
	ListSep string
	// Dot is the decimal point character. Default ".".
	Dot string
	// Expand renders inventory columns as one aligned line per position
	// instead of a compact single-line string.
	Expand bool
	// Commas requests thousands separators on numbers. The renderers do
	// not apply it yet; the flag is carried for callers that do their own
	// number formatting.
	Commas bool

	prec map[string]int
}

// NewContext returns a Context with default separators and an empty
// precision map.
func NewContext() *Context {
	return &Context{ListSep: ",", Dot: ".", prec: make(map[string]int)}
}

// SetPrecision records scale as an observed number of fractional digits
// for currency. The map keeps the maximum scale seen per currency.
func (c *Context) SetPrecision(currency string, scale int) {
	if c.prec == nil {
		c.prec = make(map[string]int)
	}
	if cur, ok := c.prec[currency]; !ok || scale > cur {
		c.prec[currency] = scale
	}
}

// Precision returns the maximum fractional scale observed for currency.
func (c *Context) Precision(currency string) (int, bool) {
	scale, ok := c.prec[currency]
	return scale, ok
}

// ObservePrecision feeds the precision map from a single value. Amounts,
// positions, and inventories contribute the scale of each of their numbers
// under the number's currency; every other value is ignored, since a bare
// decimal has no currency to file it under.
func (c *Context) ObservePrecision(v any) {
	switch x := v.(type) {
	case Amount:
		c.SetPrecision(x.Currency, fracDigits(x.Number))
	case Position:
		c.ObservePrecision(x.Units)
		if x.Cost != nil {
			c.ObservePrecision(*x.Cost)
		}
	case Inventory:
		for _, pos := range x {
			c.ObservePrecision(pos)
		}
	}
}

// ObserveRows feeds the precision map from every value of a result set.
// Call it before rendering; the renderers themselves never mutate the
// Context.
func (c *Context) ObserveRows(rows [][]any) {
	for _, row := range rows {
		for _, v := range row {
			c.ObservePrecision(v)
		}
	}
}

func (c *Context) listsep() string {
	if c == nil || c.ListSep == "" {
		return ","
	}
	return c.ListSep
}

func (c *Context) dot() string {
	if c == nil || c.Dot == "" {
		return "."
	}
	return c.Dot
}
