// Package colfmt computes fixed-width textual layouts for tabular query
// results with heterogeneous, dynamically typed columns, and renders every
// row into aligned monospaced text.
//
// The central abstraction is the [Renderer]: a stateful per-column
// formatter that first observes every value in its column to determine the
// shared width, alignment, and precision parameters, and then formats any
// value to a string of exactly the column's computed width. Rendering is
// therefore strictly two-pass — observe, finalize, format.
//
// # Column kinds
//
// Columns declare one of a closed set of kinds: [KindBool], [KindString],
// [KindSet], [KindDate], [KindInt], [KindDecimal], [KindAmount],
// [KindPosition], [KindInventory], and the [KindObject] fallback that any
// unknown kind routes to. [NewRenderer] maps a kind to its renderer.
//
// Numbers use exact decimal arithmetic ([decimal.Decimal]) so that a
// value's scale — the number of fractional digits as written — survives
// into layout decisions. A decimal column aligns all values on the decimal
// point at the maximum observed scale, padding narrower values with spaces
// rather than zeros and truncating wider ones.
//
// The composite kinds compose sub-renderers: an amount is a decimal plus a
// currency code, each aligned to its own independent width; a position
// adds an optional bracketed cost; an inventory renders one line per
// position, aligned across all positions of all rows in the column.
//
// # Rendering a result set
//
// [RenderText] orchestrates the two passes over a whole result set and
// writes a header, a dash rule, and the formatted rows:
//
//	ctx := colfmt.NewContext()
//	ctx.ObserveRows(rows)
//	err := colfmt.RenderText(os.Stdout, cols, rows, ctx)
//
// The [Context] carries the per-query configuration: the per-currency
// precision map that lets a narrow amount column reserve the fractional
// digits its currency uses elsewhere in the result set, the set member
// separator, and the inventory expansion flag. It is read-only once
// rendering starts and may be shared across concurrent renders.
//
// [RenderCSV] and [RenderMarkdown] write the same result sets in their
// natural unaligned string forms.
//
// # Data sources
//
// [ReadCSV] converts a CSV document into typed rows using declared
// columns, which can in turn be parsed from a YAML document with
// [ParseSchema]. Conversion is strict: booleans accept only the literals
// "1", "true", "0", and "false" (case-insensitively), dates only ISO-8601,
// and failures surface as errors wrapping [ErrInvalidLiteral].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidLiteral] — a cell that does not parse as its declared kind
//   - [ErrUnknownType] — a schema declaration naming no known kind
//   - [ErrColumnCount] — a row or record with the wrong number of values
//
// Rendering itself never fails beyond sink write errors: renderer
// construction and formatting are pure computation, and the one width
// overflow the model allows (an integer wider than anything observed) is
// deliberately emitted in full rather than raised.
package colfmt
