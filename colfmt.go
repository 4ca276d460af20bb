package colfmt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidLiteral = errors.New("invalid literal")
	ErrUnknownType    = errors.New("unknown column type")
	ErrColumnCount    = errors.New("wrong number of columns")
)

// Kind identifies the value type of a column.
type Kind string

const (
	KindObject    Kind = "object"
	KindBool      Kind = "bool"
	KindString    Kind = "string"
	KindSet       Kind = "set"
	KindDate      Kind = "date"
	KindInt       Kind = "int"
	KindDecimal   Kind = "decimal"
	KindAmount    Kind = "amount"
	KindPosition  Kind = "position"
	KindInventory Kind = "inventory"
)

var kinds = []Kind{
	KindObject, KindBool, KindString, KindSet, KindDate,
	KindInt, KindDecimal, KindAmount, KindPosition, KindInventory,
}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Kinds returns all supported column kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind parses a column type declaration as found in schema documents.
// Unlike renderer selection, which silently falls back to Object, a
// declaration that matches no kind is an error: at the schema boundary a
// typo should not degrade into generic formatting.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Column is a single column of a result set: a header name and the declared
// kind of its values.
type Column struct {
	Name string
	Kind Kind
}

// Renderer is a stateful per-column formatter. It observes every value of
// its column via Update, computes shared layout parameters in Prepare, and
// then formats any value to the column's fixed width.
//
// The protocol is strictly two-phase: all Update calls happen before the
// single Prepare call, after which Format may be called any number of
// times, in any order, for values seen or unseen. Update after Prepare is
// a contract violation. Format must be pure after Prepare.
//
// A nil value stands for null. Passing a value of the wrong kind for the
// renderer is a programming error and panics.
type Renderer interface {
	// Update observes one value of the column.
	Update(v any)
	// Prepare finalizes the layout from the observed values.
	Prepare()
	// Width returns the fixed column width in display cells.
	Width() int
	// Format renders v to exactly Width cells. See IntegerRenderer for
	// the one tolerated exception.
	Format(v any) string
}

// NewRenderer returns the renderer for a column of the given kind. Unknown
// kinds deliberately route to the Object fallback rather than failing:
// selection never errors. Inventory columns honor ctx.Expand — expanded
// inventories render one aligned line per position, collapsed ones render
// their compact single-line string form.
func NewRenderer(kind Kind, ctx *Context) Renderer {
	switch kind {
	case KindBool:
		return &BoolRenderer{}
	case KindString:
		return &StringRenderer{}
	case KindSet:
		return &SetRenderer{ctx: ctx}
	case KindDate:
		return &DateRenderer{}
	case KindInt:
		return &IntegerRenderer{}
	case KindDecimal:
		return &DecimalRenderer{num: decimalAligner{ctx: ctx}}
	case KindAmount:
		return newAmountRenderer(ctx)
	case KindPosition:
		return newPositionRenderer(ctx)
	case KindInventory:
		if ctx.Expand {
			return &InventoryRenderer{pos: newPositionRenderer(ctx)}
		}
		return &ObjectRenderer{}
	default:
		return &ObjectRenderer{}
	}
}
