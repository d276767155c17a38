// Package tabulator renders streaming text into width-aware table columns.
//
// Unlike table writers that take finished rows, a [Tabulator] is an
// io.Writer: text streams into the current column and physical output lines
// are emitted as soon as every column to the left has produced its share,
// so a table can render incrementally while it is still being generated.
// Each column is a [Cell] with its own width, justification, wrapping,
// truncation, padding, and ellipsis.
//
// # Basic Usage
//
//	tab := tabulator.New(os.Stdout, tabulator.Columns(10, 10)...)
//	tab.TopLine()
//	io.WriteString(tab, "hello")
//	tab.EndColumn()
//	io.WriteString(tab, "world")
//	tab.EndColumn()
//	tab.BottomLine()
//
//	+------------+------------+
//	| hello      | world      |
//	+------------+------------+
//
// [Tabulator.EndColumn] marks the current column's content complete for the
// row; ending the last column forces the whole row out. [Tabulator.WriteRow]
// and [Tabulator.WriteRows] wrap this for the common one-string-per-column
// case.
//
// # Layout
//
// A cell's width counts display columns, not bytes or runes: East-Asian wide
// characters count two columns (via go-runewidth) and malformed bytes pass
// through untouched, scoring one column each. Text longer than the width
// wraps at character or word boundaries ([Cell.SetWrap]), or is cut to a
// single line with an ellipsis marker ([Cell.SetTruncate]); truncation keeps
// the end of the text when cutting on the left. A zero-width cell is
// unbounded and splits only at explicit newlines.
//
// # Styles
//
// A [Style] holds the border glyphs for the top, interior, and bottom rows
// plus the vertical separators. Named styles range from [StyleEmpty] and
// [StyleASCII] (the default) to Unicode box drawing ([StyleBox],
// [StyleRoundedBox], [StyleHeavyBox], [StyleDoubleBox]) and borderless
// variants. [ParseStyle] resolves CLI flag names; [StyleNames] lists them.
//
// # Incremental Output
//
// [Tabulator.Flush] emits every line already known complete without closing
// the pending row, which suits progress output: write a column, flush, keep
// appending to the same row later. [Tabulator.Close] forces the pending row
// out.
//
// # Nesting
//
// Because a Tabulator is an io.Writer, another Tabulator can be constructed
// on top of it to render a table inside a cell.
//
// # Logging
//
// [NewLogFormat] and [Logger] build a log writer whose entries share a fixed
// field layout (timestamp, tag, caller location) rendered through the same
// column engine, so multi-line messages stay aligned under the first line.
//
// # Errors
//
// Write errors from the underlying sink propagate unmodified from EndColumn,
// Flush, and Close. Configuration mistakes (negative widths, a width too
// small for its ellipsis, zero columns) panic: they are programmer errors,
// not runtime conditions.
package tabulator
