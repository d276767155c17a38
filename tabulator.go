package tabulator

import (
	"io"
)

// Tabulator interleaves text written to several columns into properly
// synchronized table rows on an underlying writer. Text accumulates per
// column; physical output lines are emitted as soon as every column to the
// left has produced its share of the line.
//
// A Tabulator is itself an io.Writer, so one can be constructed on top of
// another to nest a table inside a cell.
type Tabulator struct {
	w      io.Writer
	cells  []*Cell
	style  Style
	column int // column receiving new text
	sync   int // column currently draining to the sink
	fresh  bool
	closed bool
}

// New returns a Tabulator writing rows to w with one column per cell. It
// panics when no cells are given. The default style is [StyleASCII].
func New(w io.Writer, cells ...*Cell) *Tabulator {
	if len(cells) == 0 {
		panic("tabulator: at least one column is required")
	}
	return &Tabulator{
		w:     w,
		cells: cells,
		style: StyleASCII,
		fresh: true,
	}
}

// Write appends p to the current column. It never fails; sink errors surface
// from [Tabulator.EndColumn], [Tabulator.Flush], or [Tabulator.Close].
func (t *Tabulator) Write(p []byte) (int, error) {
	t.cells[t.column].put(p)
	return len(p), nil
}

// WriteString appends s to the current column.
func (t *Tabulator) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// SetStyle replaces the table's glyph style.
func (t *Tabulator) SetStyle(s Style) *Tabulator {
	t.style = s
	return t
}

// CurrentColumn returns the index of the column receiving new text.
func (t *Tabulator) CurrentColumn() int { return t.column }

// CurrentCell returns the cell receiving new text.
func (t *Tabulator) CurrentCell() *Cell { return t.cells[t.column] }

// SetWidth adjusts the current column's width.
func (t *Tabulator) SetWidth(width int) *Tabulator {
	t.CurrentCell().SetWidth(width)
	return t
}

// SetJustify adjusts the current column's justification.
func (t *Tabulator) SetJustify(j Justify) *Tabulator {
	t.CurrentCell().SetJustify(j)
	return t
}

// SetTruncate adjusts the current column's truncation mode.
func (t *Tabulator) SetTruncate(tr Truncate) *Tabulator {
	t.CurrentCell().SetTruncate(tr)
	return t
}

// SetWrap adjusts the current column's wrapping mode.
func (t *Tabulator) SetWrap(w Wrap) *Tabulator {
	t.CurrentCell().SetWrap(w)
	return t
}

// SetPad adjusts the current column's padding.
func (t *Tabulator) SetPad(left, right string) *Tabulator {
	t.CurrentCell().SetPad(left, right)
	return t
}

// SetEllipsis adjusts the current column's truncation marker.
func (t *Tabulator) SetEllipsis(e string) *Tabulator {
	t.CurrentCell().SetEllipsis(e)
	return t
}

// EndColumn marks the current column's content complete for this row and
// advances to the next. Ending the last column completes the row and forces
// it out to the sink.
func (t *Tabulator) EndColumn() error {
	t.column++
	if t.column == len(t.cells) {
		t.column = 0
		return t.flush(true)
	}
	return nil
}

// Flush drains every line that can already be determined complete without
// forcing the pending row closed, then flushes the underlying writer if it
// supports it.
func (t *Tabulator) Flush() error {
	if err := t.flush(false); err != nil {
		return err
	}
	return flushWriter(t.w)
}

// Close forces out any partially assembled row and flushes the underlying
// writer. Close is idempotent; the Tabulator must not be written to
// afterwards.
func (t *Tabulator) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if err := t.finishRow(); err != nil {
		return err
	}
	return flushWriter(t.w)
}

// TopLine draws the style's top border row.
func (t *Tabulator) TopLine() error { return t.drawLine(t.style.Top) }

// HorizLine draws the style's interior border row.
func (t *Tabulator) HorizLine() error { return t.drawLine(t.style.Middle) }

// BottomLine draws the style's bottom border row.
func (t *Tabulator) BottomLine() error { return t.drawLine(t.style.Bottom) }

// finishRow force-flushes whenever a row is mid-flight: the column index has
// advanced, a physical line is unterminated, or any cell still buffers text.
func (t *Tabulator) finishRow() error {
	if t.column != 0 || !t.fresh || t.anyBuffered(0) {
		t.column = 0
		return t.flush(true)
	}
	return nil
}

func (t *Tabulator) drawLine(line Line) error {
	if err := t.finishRow(); err != nil {
		return err
	}
	if err := t.drawSegment(t.cells[0], line.Left, line.Fill); err != nil {
		return err
	}
	for _, c := range t.cells[1:] {
		if err := t.drawSegment(c, line.Center, line.Fill); err != nil {
			return err
		}
	}
	if err := t.drawGlyph(line.Right); err != nil {
		return err
	}
	_, err := io.WriteString(t.w, "\n")
	return err
}

func (t *Tabulator) drawSegment(c *Cell, glyph, fill string) error {
	if err := t.drawGlyph(glyph); err != nil {
		return err
	}
	return writeCycled(t.w, fill, c.CellWidth())
}

func (t *Tabulator) drawGlyph(g string) error {
	if g == "" {
		return nil
	}
	_, err := io.WriteString(t.w, g)
	return err
}

func (t *Tabulator) anyBuffered(from int) bool {
	for _, c := range t.cells[from:] {
		if !c.empty() {
			return true
		}
	}
	return false
}

// more reports whether another line segment can make progress: the draining
// column trails the writing column, a forced row has not wrapped back to the
// first column, or some cell still buffers text.
func (t *Tabulator) more(force bool) bool {
	if !force && t.sync < t.column {
		return true
	}
	if force && t.sync > 0 {
		return true
	}
	from := t.sync
	if force {
		from = 0
	}
	return t.anyBuffered(from)
}

// flush is the scheduling loop. Columns drain in order; a column may close
// its line out early only when it is not the last one still awaiting content
// for the row. A column that cannot complete its line stops the drain until
// more text arrives.
func (t *Tabulator) flush(force bool) error {
	for t.more(force) {
		if t.fresh {
			if err := t.drawGlyph(t.style.Cell.Left); err != nil {
				return err
			}
			t.fresh = false
		}
		full := force || t.sync != t.column || t.anyBuffered(t.sync+1)
		done, err := t.cells[t.sync].writeLine(t.w, full)
		if err != nil {
			return err
		}
		if !done {
			return nil
		}
		if t.sync == len(t.cells)-1 {
			if err := t.drawGlyph(t.style.Cell.Right); err != nil {
				return err
			}
			if _, err := io.WriteString(t.w, "\n"); err != nil {
				return err
			}
			t.fresh = true
		} else {
			if err := t.drawGlyph(t.style.Cell.Center); err != nil {
				return err
			}
		}
		t.sync++
		if t.sync == len(t.cells) {
			t.sync = 0
		}
	}
	return nil
}

// flushWriter forwards a flush to a byte sink. A nested Tabulator's sink is
// the outer Tabulator, whose Flush runs row scheduling rather than draining
// buffered bytes; tearing down an inner table must not disturb the outer
// row, so only true byte sinks are flushed.
func flushWriter(w io.Writer) error {
	if _, ok := w.(*Tabulator); ok {
		return nil
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
