package tabulator_test

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/bjaus/tabulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSink = errors.New("sink write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errSink }

// endRow writes s into the current column and completes the row of a
// single-column table.
func endRow(t *testing.T, tab *tabulator.Tabulator, s string) {
	t.Helper()
	_, err := io.WriteString(tab, s)
	require.NoError(t, err)
	require.NoError(t, tab.EndColumn())
}

func TestWrapCharacter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10))
	endRow(t, tab, "abcdef ghijkl")
	assert.Equal(t, "| abcdef ghi |\n| jkl        |\n", buf.String())
}

func TestWrapWord(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).SetWrap(tabulator.WrapWord))
	endRow(t, tab, "abcdef ghijkl")
	assert.Equal(t, "| abcdef     |\n| ghijkl     |\n", buf.String())
}

func TestWrapCharacterKeepsBreakSpace(t *testing.T) {
	t.Parallel()
	// The space lands inside the first line, so nothing is consumed at
	// the break.
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10))
	endRow(t, tab, "abcdefghi jklmno")
	assert.Equal(t, "| abcdefghi  |\n| jklmno     |\n", buf.String())
}

func TestWrapCharacterSplitsMidWord(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10))
	endRow(t, tab, "abcdefghijk lmno")
	assert.Equal(t, "| abcdefghij |\n| k lmno     |\n", buf.String())
}

func TestWrapWordSplitsUnbreakableWord(t *testing.T) {
	t.Parallel()
	// A word longer than the column has no break to use; it splits at the
	// width only because it starts the line.
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).SetWrap(tabulator.WrapWord))
	endRow(t, tab, "abcdefghijklm")
	assert.Equal(t, "| abcdefghij |\n| klm        |\n", buf.String())
}

func TestWrapWordDefersWordMidLine(t *testing.T) {
	t.Parallel()
	// "abcdefghi" cannot fit after "x " on the same line, so the whole
	// word moves to the next one instead of splitting.
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).SetWrap(tabulator.WrapWord))
	_, err := io.WriteString(tab, "x ")
	require.NoError(t, err)
	require.NoError(t, tab.Flush())
	endRow(t, tab, "abcdefghi")
	assert.Equal(t, "| x          |\n| abcdefghi  |\n", buf.String())
}

func TestExplicitNewlineKeepsFollowingSpaces(t *testing.T) {
	t.Parallel()
	// Only the newline is consumed at an explicit break; the indent on
	// the next line survives even under word wrapping.
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).SetWrap(tabulator.WrapWord))
	endRow(t, tab, "ab\n  cd")
	assert.Equal(t, "| ab         |\n|   cd       |\n", buf.String())
}

func TestTruncateRight(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).SetTruncate(tabulator.TruncateRight))
	endRow(t, tab, "abcdef ghijkl")
	assert.Equal(t, "| abcdef gh… |\n", buf.String())
}

func TestTruncateLeft(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).SetTruncate(tabulator.TruncateLeft))
	endRow(t, tab, "abcdef ghijkl")
	assert.Equal(t, "| …ef ghijkl |\n", buf.String())
}

func TestTruncateRightWord(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).
		SetTruncate(tabulator.TruncateRight).
		SetWrap(tabulator.WrapWord))
	endRow(t, tab, "abcdef ghijkl")
	assert.Equal(t, "| abcdef…    |\n", buf.String())
}

func TestTruncateLeftWord(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).
		SetTruncate(tabulator.TruncateLeft).
		SetWrap(tabulator.WrapWord))
	endRow(t, tab, "abcdef ghijkl")
	assert.Equal(t, "| …ghijkl    |\n", buf.String())
}

func TestTruncateMultiline(t *testing.T) {
	t.Parallel()
	const text = "123456 ghijkl\nmnopqr stuvwx"
	tests := []struct {
		name     string
		truncate tabulator.Truncate
		wrap     tabulator.Wrap
		want     string
	}{
		{"left character", tabulator.TruncateLeft, tabulator.WrapCharacter, "| …qr stuvwx |\n"},
		{"left word", tabulator.TruncateLeft, tabulator.WrapWord, "| …stuvwx    |\n"},
		{"right character", tabulator.TruncateRight, tabulator.WrapCharacter, "| 123456 gh… |\n"},
		{"right word", tabulator.TruncateRight, tabulator.WrapWord, "| 123456…    |\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tab := tabulator.New(&buf, tabulator.NewCell(10).
				SetTruncate(tc.truncate).
				SetWrap(tc.wrap))
			endRow(t, tab, text)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestTruncateFittingContent(t *testing.T) {
	t.Parallel()
	// Content within the width renders without an ellipsis.
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).SetTruncate(tabulator.TruncateRight))
	endRow(t, tab, "abc")
	assert.Equal(t, "| abc        |\n", buf.String())
}

func TestTruncateFittingContentSplitsAtNewline(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).SetTruncate(tabulator.TruncateRight))
	endRow(t, tab, "ab\ncd")
	assert.Equal(t, "| ab         |\n| cd         |\n", buf.String())
}

func TestCustomEllipsis(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).
		SetTruncate(tabulator.TruncateRight).
		SetEllipsis(tabulator.EllipsisASCII))
	endRow(t, tab, "abcdef ghijkl")
	assert.Equal(t, "| abcdef ... |\n", buf.String())
}

func TestTwoColumnNewlineOnly(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(10, 10)...)
	_, err := io.WriteString(tab, "\n")
	require.NoError(t, err)
	require.NoError(t, tab.EndColumn())
	require.NoError(t, tab.EndColumn())
	assert.Equal(t, "|            |            |\n", buf.String())
}

func TestTwoColumnShortText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(10, 10)...)
	require.NoError(t, tab.WriteRow("abc"))
	assert.Equal(t, "| abc        |            |\n", buf.String())
}

func TestZeroWidthColumns(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(0, 0)...)
	require.NoError(t, tab.WriteRow())
	assert.Equal(t, "|  |  |\n", buf.String())
}

func TestZeroWidthColumnKeepsContent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(0, 0)...)
	require.NoError(t, tab.WriteRow("hello world"))
	assert.Equal(t, "| hello world |  |\n", buf.String())
}

func TestZeroWidthColumnSplitsAtNewlines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(0))
	endRow(t, tab, "a\nb")
	assert.Equal(t, "| a |\n| b |\n", buf.String())
}

func TestJustify(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf,
		tabulator.NewCell(10).SetJustify(tabulator.JustifyRight),
		tabulator.NewCell(10).SetJustify(tabulator.JustifyCenter),
		tabulator.NewCell(10).SetJustify(tabulator.JustifyLeft),
	)
	require.NoError(t, tab.WriteRow("1234", "1234", "1234"))
	assert.Equal(t, "|       1234 |    1234    | 1234       |\n", buf.String())
}

func TestJustifyRightDefersPartialLine(t *testing.T) {
	t.Parallel()
	// A right-justified cell cannot place text until the line is known
	// complete, so a plain flush emits nothing from it.
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10).SetJustify(tabulator.JustifyRight))
	_, err := io.WriteString(tab, "abc")
	require.NoError(t, err)
	require.NoError(t, tab.Flush())
	assert.Equal(t, "|", buf.String())
	endRow(t, tab, "def")
	assert.Equal(t, "|     abcdef |\n", buf.String())
}

func TestFlushMidRow(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(10, 10)...)
	_, err := io.WriteString(tab, "Wait")
	require.NoError(t, err)
	require.NoError(t, tab.EndColumn())
	_, err = io.WriteString(tab, "3...")
	require.NoError(t, err)
	require.NoError(t, tab.Flush())
	assert.Equal(t, "| Wait       | 3...", buf.String())

	endRow(t, tab, "done")
	assert.Equal(t, "| Wait       | 3...done   |\n", buf.String())
}

func TestWideRunesCountTwoColumns(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(4))
	endRow(t, tab, "你好")
	assert.Equal(t, "| 你好 |\n", buf.String())
}

func TestWideRuneNeverSplits(t *testing.T) {
	t.Parallel()
	// A wide rune that does not fit the remaining width moves whole to
	// the next line.
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(3))
	endRow(t, tab, "你好")
	assert.Equal(t, "| 你  |\n| 好  |\n", buf.String())
}

func TestMalformedBytesPassThrough(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(4))
	_, err := tab.Write([]byte{0xff, 0xfe})
	require.NoError(t, err)
	require.NoError(t, tab.EndColumn())
	assert.Equal(t, "| \xff\xfe   |\n", buf.String())
}

func TestBorderRows(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(10, 10)...)
	require.NoError(t, tab.TopLine())
	require.NoError(t, tab.WriteRow("hello", "world"))
	require.NoError(t, tab.BottomLine())
	want := "+------------+------------+\n" +
		"| hello      | world      |\n" +
		"+------------+------------+\n"
	assert.Equal(t, want, buf.String())
}

func TestBoxStyle(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(10, 10)...)
	tab.SetStyle(tabulator.StyleBox)
	require.NoError(t, tab.TopLine())
	require.NoError(t, tab.WriteRow("hello", "world"))
	require.NoError(t, tab.HorizLine())
	require.NoError(t, tab.BottomLine())
	want := "┌────────────┬────────────┐\n" +
		"│ hello      │ world      │\n" +
		"├────────────┼────────────┤\n" +
		"└────────────┴────────────┘\n"
	assert.Equal(t, want, buf.String())
}

func TestEmptyStyle(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(10, 10)...)
	tab.SetStyle(tabulator.StyleEmpty)
	require.NoError(t, tab.TopLine())
	require.NoError(t, tab.WriteRow("hello", "world"))
	require.NoError(t, tab.BottomLine())
	assert.Equal(t, "\n hello       world      \n\n", buf.String())
}

func TestMarkdownStyle(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(5, 5)...)
	tab.SetStyle(tabulator.StyleMarkdown)
	require.NoError(t, tab.WriteRow("a", "b"))
	require.NoError(t, tab.HorizLine())
	require.NoError(t, tab.WriteRow("c", "d"))
	want := " a     | b     \n" +
		"-------|-------\n" +
		" c     | d     \n"
	assert.Equal(t, want, buf.String())
}

func TestCustomStyleGlyphCycling(t *testing.T) {
	t.Parallel()
	// Multi-symbol fill glyphs cycle across the cell width.
	style := tabulator.Style{
		Top:  tabulator.Line{Left: "<", Center: "|", Right: ">", Fill: "t-"},
		Cell: tabulator.Line{Left: "|", Center: "|", Right: "|"},
	}
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(3, 3)...)
	tab.SetStyle(style)
	require.NoError(t, tab.TopLine())
	assert.Equal(t, "<t-t-t|t-t-t>\n", buf.String())
}

func TestNestedTabulator(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	outer := tabulator.New(&buf, tabulator.Columns(20, 20)...)
	_, err := io.WriteString(outer, "one")
	require.NoError(t, err)
	require.NoError(t, outer.EndColumn())

	inner := tabulator.New(outer, tabulator.Columns(5, 5)...)
	_, err = io.WriteString(inner, "12345678")
	require.NoError(t, err)
	require.NoError(t, inner.EndColumn())
	_, err = io.WriteString(inner, "abcd")
	require.NoError(t, err)
	require.NoError(t, inner.EndColumn())
	require.NoError(t, inner.Close())

	require.NoError(t, outer.EndColumn())
	want := "| one                  | | 12345 | abcd  |    |\n" +
		"|                      | | 678   |       |    |\n"
	assert.Equal(t, want, buf.String())
}

func TestNestedCloseKeepsOuterRowOpen(t *testing.T) {
	t.Parallel()
	// Tearing down an inner table renders into the outer cell only; the
	// outer row must not reach the sink until its own columns end.
	var buf bytes.Buffer
	outer := tabulator.New(&buf, tabulator.Columns(20, 20)...)
	_, err := io.WriteString(outer, "one")
	require.NoError(t, err)
	require.NoError(t, outer.EndColumn())

	inner := tabulator.New(outer, tabulator.Columns(5, 5)...)
	require.NoError(t, inner.WriteRow("abc"))
	require.NoError(t, inner.Flush())
	require.NoError(t, inner.Close())
	assert.Empty(t, buf.String())

	require.NoError(t, outer.EndColumn())
	assert.Equal(t, "| one                  | | abc   |       |    |\n", buf.String())
}

func TestWriteRowBlank(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(5, 5)...)
	require.NoError(t, tab.WriteRow())
	assert.Equal(t, "|       |       |\n", buf.String())
}

func TestBorderRowForcesPendingRow(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.NewCell(10))
	_, err := io.WriteString(tab, "abc")
	require.NoError(t, err)
	require.NoError(t, tab.HorizLine())
	assert.Equal(t, "| abc        |\n+------------+\n", buf.String())
}

func TestCloseForcesPendingRow(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(10, 10)...)
	_, err := io.WriteString(tab, "abc")
	require.NoError(t, err)
	require.NoError(t, tab.EndColumn())
	require.NoError(t, tab.Close())
	assert.Equal(t, "| abc        |            |\n", buf.String())

	// Close is idempotent.
	require.NoError(t, tab.Close())
	assert.Equal(t, "| abc        |            |\n", buf.String())
}

func TestWriteRowSpillsExtraValues(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(5, 5)...)
	require.NoError(t, tab.WriteRow("a", "b", "c"))
	want := "| a     | b     |\n" +
		"| c     |       |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRows(t *testing.T) {
	t.Parallel()
	rows := func(yield func([]string) bool) {
		for _, row := range [][]string{{"a", "b"}, {"c", "d"}} {
			if !yield(row) {
				return
			}
		}
	}
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(5, 5)...)
	require.NoError(t, tab.WriteRows(iter.Seq[[]string](rows)))
	want := "| a     | b     |\n" +
		"| c     | d     |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRowChan(t *testing.T) {
	t.Parallel()
	ch := make(chan []string, 2)
	ch <- []string{"a", "b"}
	ch <- []string{"c", "d"}
	close(ch)
	var buf bytes.Buffer
	tab := tabulator.New(&buf, tabulator.Columns(5, 5)...)
	require.NoError(t, tab.WriteRowChan(ch))
	want := "| a     | b     |\n" +
		"| c     | d     |\n"
	assert.Equal(t, want, buf.String())
}

func TestParseStyle(t *testing.T) {
	t.Parallel()
	style, err := tabulator.ParseStyle("box")
	require.NoError(t, err)
	assert.Equal(t, tabulator.StyleBox, style)
}

func TestParseStyleUnknown(t *testing.T) {
	t.Parallel()
	_, err := tabulator.ParseStyle("dotted")
	assert.ErrorIs(t, err, tabulator.ErrUnknownStyle)
}

func TestStyleNames(t *testing.T) {
	t.Parallel()
	names := tabulator.StyleNames()
	assert.Contains(t, names, "ascii")
	for _, name := range names {
		_, err := tabulator.ParseStyle(name)
		assert.NoError(t, err)
	}
}

func TestSinkErrorPropagates(t *testing.T) {
	t.Parallel()
	tab := tabulator.New(errWriter{}, tabulator.NewCell(10))
	_, err := io.WriteString(tab, "x")
	require.NoError(t, err)
	assert.ErrorIs(t, tab.EndColumn(), errSink)
}

func TestNewPanicsWithoutCells(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { tabulator.New(&bytes.Buffer{}) })
}

func TestNegativeWidthPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { tabulator.NewCell(-1) })
}

func TestEllipsisWiderThanWidthPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		tabulator.NewCell(1).SetTruncate(tabulator.TruncateRight)
	})
	assert.Panics(t, func() {
		tabulator.NewCell(3).SetTruncate(tabulator.TruncateRight).SetEllipsis("...")
	})
}
