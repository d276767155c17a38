package tabulator

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"
)

// Default field widths and timestamp layout.
const (
	defaultTagWidth        = 10
	defaultFileWidth       = 32
	defaultFuncWidth       = 32
	defaultLineWidth       = 4
	defaultTimestampLayout = "2006-01-02 15:04:05.000"
)

// entryInfo carries the per-entry data the fixed fields render from.
type entryInfo struct {
	tag  string
	file string
	line int
	fn   string
}

// Field is one fixed element of a log entry line. Fields are built with the
// constructors in this file; the set is closed so the entry column width can
// be computed up front.
type Field interface {
	cell() *Cell
	render(w io.Writer, e entryInfo) error
}

type timestampField struct {
	layout string
	now    func() time.Time
}

func (f timestampField) cell() *Cell {
	return NewCell(stringWidth(f.now().Format(f.layout))).SetPad("", " ")
}

func (f timestampField) render(w io.Writer, _ entryInfo) error {
	_, err := io.WriteString(w, f.now().Format(f.layout))
	return err
}

// Timestamp renders the entry time using a [time] layout string. An empty
// layout selects "2006-01-02 15:04:05.000". The field width is derived from
// rendering the layout once, so layouts must produce fixed-width output.
func Timestamp(layout string) Field {
	return TimestampFunc(layout, time.Now)
}

// TimestampFunc is [Timestamp] with an injectable clock.
func TimestampFunc(layout string, now func() time.Time) Field {
	if layout == "" {
		layout = defaultTimestampLayout
	}
	return timestampField{layout: layout, now: now}
}

type tagField struct{ width int }

func (f tagField) cell() *Cell {
	return NewCell(f.width).SetPad("", " ").SetTruncate(TruncateRight)
}

func (f tagField) render(w io.Writer, e entryInfo) error {
	_, err := io.WriteString(w, e.tag)
	return err
}

// Tag renders the logger's tag, truncated on the right. A non-positive width
// selects the default of 10.
func Tag(width int) Field {
	if width <= 0 {
		width = defaultTagWidth
	}
	return tagField{width: width}
}

type fileField struct{ width int }

func (f fileField) cell() *Cell {
	return NewCell(f.width).SetPad("", " ").SetTruncate(TruncateLeft)
}

func (f fileField) render(w io.Writer, e entryInfo) error {
	_, err := io.WriteString(w, e.file)
	return err
}

// File renders the calling file path, truncated on the left so the file name
// survives. A non-positive width selects the default of 32.
func File(width int) Field {
	if width <= 0 {
		width = defaultFileWidth
	}
	return fileField{width: width}
}

type funcField struct{ width int }

func (f funcField) cell() *Cell {
	return NewCell(f.width).SetPad("", " ").SetTruncate(TruncateLeft)
}

func (f funcField) render(w io.Writer, e entryInfo) error {
	_, err := io.WriteString(w, e.fn)
	return err
}

// FuncName renders the calling function name, truncated on the left. A
// non-positive width selects the default of 32.
func FuncName(width int) Field {
	if width <= 0 {
		width = defaultFuncWidth
	}
	return funcField{width: width}
}

type lineField struct{ width int }

func (f lineField) cell() *Cell {
	return NewCell(f.width).SetPad("", " ").SetJustify(JustifyRight).SetTruncate(TruncateLeft)
}

func (f lineField) render(w io.Writer, e entryInfo) error {
	_, err := io.WriteString(w, strconv.Itoa(e.line))
	return err
}

// LineNumber renders the calling line number, right justified. A
// non-positive width selects the default of 4.
func LineNumber(width int) Field {
	if width <= 0 {
		width = defaultLineWidth
	}
	return lineField{width: width}
}

type literalField struct{ s string }

func (f literalField) cell() *Cell {
	return NewCell(stringWidth(f.s)).SetPad("", "")
}

func (f literalField) render(w io.Writer, _ entryInfo) error {
	_, err := io.WriteString(w, f.s)
	return err
}

// Literal renders s verbatim on every entry, with no padding around it.
func Literal(s string) Field {
	return literalField{s: s}
}

type customField struct {
	width int
	fn    func(io.Writer) error
}

func (f customField) cell() *Cell {
	return NewCell(f.width).SetPad("", " ").SetTruncate(TruncateRight)
}

func (f customField) render(w io.Writer, _ entryInfo) error {
	return f.fn(w)
}

// Custom renders caller-supplied content, truncated on the right to width.
func Custom(width int, fn func(io.Writer) error) Field {
	return customField{width: width, fn: fn}
}

// LogFormat is the shared layout of the fixed fields rendered at the start
// of every log entry line.
type LogFormat struct {
	fields []Field
}

// NewLogFormat builds a log line layout from fields, rendered left to right.
func NewLogFormat(fields ...Field) *LogFormat {
	return &LogFormat{fields: fields}
}

// Logger returns a log writer emitting entries to w, tagged with tag.
// Entries render as a two-column borderless table: the fixed fields on the
// left, the message in an unbounded column on the right, so multi-line
// messages stay aligned under the first line.
func (f *LogFormat) Logger(w io.Writer, tag string) *Logger {
	width := 0
	for _, fld := range f.fields {
		width += fld.cell().CellWidth()
	}
	info := NewCell(width).SetPad("", " ")
	msg := NewCell(0).SetPad(" ", "")
	tab := New(w, info, msg)
	tab.SetStyle(StyleBorderlessBox)
	return &Logger{
		tab:    tab,
		fields: f.fields,
		tag:    tag,
	}
}

// Logger writes tabulated log entries. It is not safe for concurrent use.
type Logger struct {
	tab    *Tabulator
	fields []Field
	tag    string
}

// Print starts a new entry with the arguments formatted as fmt.Sprint.
func (l *Logger) Print(args ...any) error {
	w, err := l.entry(2)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, args...)
	return err
}

// Printf starts a new entry with the arguments formatted as fmt.Sprintf.
func (l *Logger) Printf(format string, args ...any) error {
	w, err := l.entry(2)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, format, args...)
	return err
}

// Writer returns the sink for the current entry's message column. Text
// written here extends the entry started by the last Print or Printf;
// newlines continue the message on fresh, field-aligned lines.
func (l *Logger) Writer() io.Writer { return l.tab }

// Flush drains every completed log line to the sink.
func (l *Logger) Flush() error { return l.tab.Flush() }

// Close finishes the pending entry, if any, and closes the underlying
// Tabulator.
func (l *Logger) Close() error {
	for l.tab.CurrentColumn() != 0 {
		if err := l.tab.EndColumn(); err != nil {
			return err
		}
	}
	return l.tab.Close()
}

// entry flushes the previous entry, renders the fixed fields through a
// nested Tabulator into the info column, and leaves the message column
// current. calldepth is forwarded to runtime.Caller.
func (l *Logger) entry(calldepth int) (io.Writer, error) {
	for l.tab.CurrentColumn() != 0 {
		if err := l.tab.EndColumn(); err != nil {
			return nil, err
		}
	}
	e := entryInfo{tag: l.tag}
	if pc, file, line, ok := runtime.Caller(calldepth); ok {
		e.file, e.line = file, line
		if fn := runtime.FuncForPC(pc); fn != nil {
			e.fn = fn.Name()
		}
	}
	cells := make([]*Cell, len(l.fields))
	for i, f := range l.fields {
		cells[i] = f.cell()
	}
	inner := New(l.tab, cells...)
	inner.SetStyle(StyleEmpty)
	for _, f := range l.fields {
		if err := f.render(inner, e); err != nil {
			return nil, err
		}
		if err := inner.EndColumn(); err != nil {
			return nil, err
		}
	}
	if err := inner.Close(); err != nil {
		return nil, err
	}
	if err := l.tab.EndColumn(); err != nil {
		return nil, err
	}
	return l.tab, nil
}
