package colfmt

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the only accepted date form, ISO-8601 calendar dates.
const dateLayout = "2006-01-02"

// Amount is a decimal number tagged with a currency or commodity code.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

// String returns the compact "NUMBER CURRENCY" form at the number's own
// scale.
func (a Amount) String() string {
	return decimalString(a.Number) + " " + a.Currency
}

// Position is an amount of units with an optional acquisition cost.
type Position struct {
	Units Amount
	Cost  *Amount
}

// String returns the compact "UNITS" or "UNITS {COST}" form.
func (p Position) String() string {
	if p.Cost == nil {
		return p.Units.String()
	}
	return p.Units.String() + " {" + p.Cost.String() + "}"
}

// Inventory is an ordered collection of positions. Lots may share a
// currency.
type Inventory []Position

// String returns the positions joined by ", ".
func (inv Inventory) String() string {
	parts := make([]string, len(inv))
	for i, pos := range inv {
		parts[i] = pos.String()
	}
	return strings.Join(parts, ", ")
}

// Set is an unordered set of strings.
type Set map[string]struct{}

// NewSet returns a Set holding the given members.
func NewSet(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Members returns the members in sorted order. Go randomizes map
// iteration per loop, so sorting is the only way to honor the contract
// that repeated renderings of the same set are identical.
func (s Set) Members() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// String returns the members sorted and comma-joined.
func (s Set) String() string {
	return strings.Join(s.Members(), ",")
}

// ParseAmount parses the "NUMBER CURRENCY" form, e.g. "100.00 USD".
func ParseAmount(s string) (Amount, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Amount{}, fmt.Errorf("%w: amount %q", ErrInvalidLiteral, s)
	}
	number, err := decimal.NewFromString(fields[0])
	if err != nil {
		return Amount{}, fmt.Errorf("%w: amount %q", ErrInvalidLiteral, s)
	}
	return Amount{Number: number, Currency: fields[1]}, nil
}

// ParsePosition parses the "UNITS" or "UNITS {COST}" form, e.g.
// "5 HOOL {500.23 USD}".
func ParsePosition(s string) (Position, error) {
	units := s
	var cost *Amount
	if i := strings.IndexByte(s, '{'); i >= 0 {
		rest := strings.TrimSpace(s[i+1:])
		if !strings.HasSuffix(rest, "}") {
			return Position{}, fmt.Errorf("%w: position %q", ErrInvalidLiteral, s)
		}
		c, err := ParseAmount(strings.TrimSuffix(rest, "}"))
		if err != nil {
			return Position{}, fmt.Errorf("%w: position %q", ErrInvalidLiteral, s)
		}
		cost = &c
		units = s[:i]
	}
	ua, err := ParseAmount(units)
	if err != nil {
		return Position{}, fmt.Errorf("%w: position %q", ErrInvalidLiteral, s)
	}
	return Position{Units: ua, Cost: cost}, nil
}

// ParseInventory parses a comma-separated list of positions, e.g.
// "5 HOOL {500.23 USD}, 12.3456 CAAD". An empty or blank string is an
// empty inventory.
func ParseInventory(s string) (Inventory, error) {
	if strings.TrimSpace(s) == "" {
		return Inventory{}, nil
	}
	parts := strings.Split(s, ",")
	inv := make(Inventory, 0, len(parts))
	for _, part := range parts {
		pos, err := ParsePosition(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: inventory %q", ErrInvalidLiteral, s)
		}
		inv = append(inv, pos)
	}
	return inv, nil
}

// ParseBool parses the literal boolean tokens "1", "true", "0", and
// "false", case-insensitively after trimming surrounding whitespace. Any
// other input is an ErrInvalidLiteral.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: boolean %q", ErrInvalidLiteral, s)
}

// ParseDate parses a strict ISO-8601 calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidLiteral, s)
	}
	return t, nil
}

// display returns the natural single-line string form of a value, the
// form the Object fallback renderer and the unaligned writers use.
func display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return x
	case time.Time:
		return x.Format(dateLayout)
	case decimal.Decimal:
		return decimalString(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// decimalString renders d at its own scale, keeping trailing zeros that
// decimal.Decimal.String would strip.
func decimalString(d decimal.Decimal) string {
	if e := d.Exponent(); e < 0 {
		return d.StringFixed(-e)
	}
	return d.String()
}
