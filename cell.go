package tabulator

import (
	"bytes"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// Justify controls where text sits within a cell's width.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

// Truncate discards text that does not fit a cell's width instead of
// wrapping it, replacing the cut end with the cell's ellipsis.
type Truncate int

const (
	TruncateNone Truncate = iota
	TruncateLeft
	TruncateRight
)

// Wrap controls where over-long text may be split across lines.
type Wrap int

const (
	WrapCharacter Wrap = iota
	WrapWord
)

// Default ellipsis strings.
const (
	Ellipsis      = "…"
	EllipsisASCII = "..."
)

// Cell is the buffer and formatting policy for a single column. Text written
// to the owning [Tabulator] accumulates here until enough is known to emit a
// display line.
type Cell struct {
	buf     []byte
	written int // display columns already emitted on the open line
	fresh   bool

	width    int
	justify  Justify
	truncate Truncate
	wrap     Wrap
	leftPad  string
	rightPad string
	ellipsis string
}

// NewCell returns a Cell width display columns wide. A width of zero leaves
// the column unbounded: lines split only at explicit newlines. Defaults:
// left justification, no truncation, character wrapping, single-space pads,
// and the UTF-8 ellipsis.
func NewCell(width int) *Cell {
	if width < 0 {
		panic(fmt.Sprintf("tabulator: negative cell width %d", width))
	}
	return &Cell{
		fresh:    true,
		width:    width,
		leftPad:  " ",
		rightPad: " ",
		ellipsis: Ellipsis,
	}
}

// Columns builds one default Cell per width.
func Columns(widths ...int) []*Cell {
	cells := make([]*Cell, len(widths))
	for i, w := range widths {
		cells[i] = NewCell(w)
	}
	return cells
}

// SetWidth sets the cell width in display columns; zero means unbounded.
func (c *Cell) SetWidth(width int) *Cell {
	if width < 0 {
		panic(fmt.Sprintf("tabulator: negative cell width %d", width))
	}
	c.width = width
	c.checkEllipsis()
	return c
}

// SetJustify sets the text position within the cell width.
func (c *Cell) SetJustify(j Justify) *Cell {
	c.justify = j
	return c
}

// SetTruncate enables or disables truncation for the cell.
func (c *Cell) SetTruncate(t Truncate) *Cell {
	c.truncate = t
	c.checkEllipsis()
	return c
}

// SetWrap sets the wrapping mode for the cell.
func (c *Cell) SetWrap(w Wrap) *Cell {
	c.wrap = w
	return c
}

// SetPad sets the strings drawn between the cell borders and the cell width.
func (c *Cell) SetPad(left, right string) *Cell {
	c.leftPad = left
	c.rightPad = right
	return c
}

// SetEllipsis sets the marker spliced in where truncation cuts text.
func (c *Cell) SetEllipsis(e string) *Cell {
	c.ellipsis = e
	c.checkEllipsis()
	return c
}

// Width returns the cell width in display columns, excluding padding.
func (c *Cell) Width() int { return c.width }

// CellWidth returns the full rendered width of the cell, padding included.
func (c *Cell) CellWidth() int {
	return c.width + stringWidth(c.leftPad) + stringWidth(c.rightPad)
}

func (c *Cell) checkEllipsis() {
	if c.width > 0 && c.truncate != TruncateNone && c.width <= stringWidth(c.ellipsis) {
		panic(fmt.Sprintf("tabulator: cell width %d cannot fit ellipsis %q", c.width, c.ellipsis))
	}
}

func (c *Cell) put(p []byte) { c.buf = append(c.buf, p...) }

func (c *Cell) empty() bool { return len(c.buf) == 0 }

// outputEnd finds the wrap boundary for one line of at most width display
// columns. Word wrapping pulls the boundary back to the nearest whitespace;
// a word too long to ever fit falls back to a character split, but only when
// it starts a fresh line (written == 0). Otherwise the whole word is
// deferred to the next line.
func (c *Cell) outputEnd(width int) int {
	end := lineEnd(c.buf, width)
	if c.wrap == WrapWord && end != len(c.buf) {
		wend, ok := wordEnd(c.buf, end)
		switch {
		case ok:
			end = wend
		case c.written > 0:
			end = 0
		}
	}
	return end
}

// truncateBuf prepares the buffer for one output line. When truncation
// applies and the whole buffered content overflows the width, the buffer is
// collapsed in place to a single line with the ellipsis spliced in. The
// returned offset is just past the last byte of the candidate line.
func (c *Cell) truncateBuf() int {
	switch {
	case c.width == 0:
		if i := bytes.IndexByte(c.buf, '\n'); i >= 0 {
			return i
		}
		return len(c.buf)
	case c.truncate == TruncateNone || displayWidth(c.buf) <= c.width:
		return c.outputEnd(c.width - c.written)
	case c.truncate == TruncateRight:
		end := c.outputEnd(c.width - stringWidth(c.ellipsis))
		c.buf = c.buf[:end]
		if len(c.buf) > 0 {
			c.buf = append(c.buf, c.ellipsis...)
		}
		return len(c.buf)
	default: // TruncateLeft
		start := lineStart(c.buf, c.width-stringWidth(c.ellipsis))
		if c.wrap == WrapWord && start != 0 {
			if s, ok := wordStart(c.buf, start); ok {
				start = s
			}
		}
		c.buf = c.buf[start:]
		if len(c.buf) > 0 {
			c.buf = append([]byte(c.ellipsis), c.buf...)
		}
		return len(c.buf)
	}
}

// writeLine renders at most one display line into w, consuming the emitted
// prefix of the buffer. full closes the line out even if more text could
// still arrive for it. The returned bool reports whether the line was
// completed: padding and fill emitted and the width accounting reset. An
// incomplete line keeps its emitted columns in written so a later call can
// extend it.
func (c *Cell) writeLine(w io.Writer, full bool) (bool, error) {
	// Truncating cells render whole lines only; nothing can be emitted
	// until the content is known complete.
	if !full && c.truncate != TruncateNone {
		return false, nil
	}

	end := c.truncateBuf()
	outWidth := displayWidth(c.buf[:end]) + c.written
	if !full && outWidth < c.width && c.justify != JustifyLeft {
		return false, nil
	}

	var lfill, rfill int
	complete := full
	if c.width > 0 {
		for outWidth > c.width && end > 0 {
			r, size := utf8.DecodeLastRune(c.buf[:end])
			end -= size
			outWidth -= symbolWidth(r, size)
		}
		complete = complete || outWidth == c.width
		switch c.justify {
		case JustifyCenter:
			lfill = (c.width - outWidth) / 2
			rfill = c.width - outWidth - lfill
		case JustifyRight:
			lfill = c.width - outWidth
		default:
			rfill = c.width - outWidth
		}
	}

	if c.fresh {
		if _, err := io.WriteString(w, c.leftPad); err != nil {
			return false, err
		}
		if err := fillSpaces(w, lfill); err != nil {
			return false, err
		}
		c.fresh = false
	}
	if _, err := w.Write(c.buf[:end]); err != nil {
		return false, err
	}
	c.buf = c.buf[end:]

	// Consume the break symbol. An explicit newline always completes the
	// line; under word wrapping a width break also swallows the rest of
	// the whitespace run.
	newlineBreak := false
	if len(c.buf) > 0 {
		if c.buf[0] == '\n' {
			complete = true
		}
		if r, size := utf8.DecodeRune(c.buf); unicode.IsSpace(r) {
			newlineBreak = r == '\n'
			c.buf = c.buf[size:]
		}
	}
	if c.wrap == WrapWord && !newlineBreak {
		for len(c.buf) > 0 {
			r, size := utf8.DecodeRune(c.buf)
			if !unicode.IsSpace(r) {
				break
			}
			c.buf = c.buf[size:]
		}
	}
	complete = complete || len(c.buf) > 0

	if !complete {
		c.written = outWidth
		return false, nil
	}
	if err := fillSpaces(w, rfill); err != nil {
		return false, err
	}
	if _, err := io.WriteString(w, c.rightPad); err != nil {
		return false, err
	}
	c.fresh = true
	c.written = 0
	return true, nil
}
