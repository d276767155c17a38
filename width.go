package tabulator

import (
	"bytes"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// symbolWidth returns the display columns of one decoded symbol. Invalid
// bytes pass through the layout engine byte-for-byte, so each one scores a
// single column.
func symbolWidth(r rune, size int) int {
	if r == utf8.RuneError && size == 1 {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// displayWidth returns the display columns needed to render b.
func displayWidth(b []byte) int {
	w := 0
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		w += symbolWidth(r, size)
		i += size
	}
	return w
}

func stringWidth(s string) int { return runewidth.StringWidth(s) }

// lineEnd returns the offset just past the last symbol of buf that fits in
// width display columns. A newline stops the scan; the returned offset points
// at it.
func lineEnd(buf []byte, width int) int {
	i := 0
	for i < len(buf) && width > 0 {
		r, size := utf8.DecodeRune(buf[i:])
		if r == '\n' {
			return i
		}
		w := symbolWidth(r, size)
		if w > width {
			break
		}
		width -= w
		i += size
	}
	return i
}

// lineStart is the mirror of lineEnd: it returns the offset of the first
// symbol of the longest suffix of buf that fits in width display columns.
// A newline stops the scan; the returned offset points just past it.
func lineStart(buf []byte, width int) int {
	i := len(buf)
	for i > 0 && width > 0 {
		r, size := utf8.DecodeLastRune(buf[:i])
		if r == '\n' {
			return i
		}
		w := symbolWidth(r, size)
		if w > width {
			break
		}
		width -= w
		i -= size
	}
	return i
}

// wordEnd narrows a character boundary to the nearest whitespace at or
// before it. The boundary symbol itself is considered part of the search
// range so a break landing exactly on whitespace is kept. ok reports whether
// any whitespace was found.
func wordEnd(buf []byte, end int) (pos int, ok bool) {
	limit := end
	if limit < len(buf) {
		_, size := utf8.DecodeRune(buf[limit:])
		limit += size
	}
	if i := bytes.LastIndexFunc(buf[:limit], unicode.IsSpace); i >= 0 {
		return i, true
	}
	return end, false
}

// wordStart narrows a backward boundary to the first whitespace at or before
// it, returning the offset just past that whitespace. ok reports whether any
// whitespace was found.
func wordStart(buf []byte, start int) (pos int, ok bool) {
	from := start
	if from > 0 {
		_, size := utf8.DecodeLastRune(buf[:from])
		from -= size
	}
	if i := bytes.IndexFunc(buf[from:], unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRune(buf[from+i:])
		return from + i + size, true
	}
	return start, false
}

// fillSpaces writes n space characters.
func fillSpaces(w io.Writer, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Repeat(" ", n))
	return err
}

// writeCycled repeats the symbols of glyph until exactly width display
// columns are covered, counting symbol widths the same way as cell text. A
// wide symbol that would overshoot the remaining width is replaced by space
// padding so borders stay aligned.
func writeCycled(w io.Writer, glyph string, width int) error {
	if glyph == "" || stringWidth(glyph) == 0 {
		return nil
	}
	runes := []rune(glyph)
	var sb strings.Builder
	for i := 0; width > 0; i = (i + 1) % len(runes) {
		rw := runewidth.RuneWidth(runes[i])
		if rw > width {
			break
		}
		sb.WriteRune(runes[i])
		width -= rw
	}
	for ; width > 0; width-- {
		sb.WriteByte(' ')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
