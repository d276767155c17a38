package tabulator

// Line holds the glyphs for one horizontal run of a table: the outer left
// and right glyphs, the glyph at interior column boundaries, and the fill
// repeated across each cell. An empty string draws nothing. Fill glyphs may
// be multiple symbols; they are cycled across the cell width.
type Line struct {
	Left   string
	Center string
	Right  string
	Fill   string
}

// Style bundles the glyph sets for a table: the three border rows and the
// vertical separators drawn around cell content on every text row.
type Style struct {
	Top    Line
	Middle Line
	Bottom Line
	Cell   Line
}

// Named presentation styles. StyleASCII is the default for a new
// [Tabulator].
var (
	StyleEmpty = Style{}

	StyleASCII = Style{
		Top:    Line{Left: "+", Center: "+", Right: "+", Fill: "-"},
		Middle: Line{Left: "+", Center: "+", Right: "+", Fill: "-"},
		Bottom: Line{Left: "+", Center: "+", Right: "+", Fill: "-"},
		Cell:   Line{Left: "|", Center: "|", Right: "|"},
	}

	StyleMarkdown = Style{
		Middle: Line{Center: "|", Fill: "-"},
		Cell:   Line{Center: "|"},
	}

	StyleBox = Style{
		Top:    Line{Left: "┌", Center: "┬", Right: "┐", Fill: "─"},
		Middle: Line{Left: "├", Center: "┼", Right: "┤", Fill: "─"},
		Bottom: Line{Left: "└", Center: "┴", Right: "┘", Fill: "─"},
		Cell:   Line{Left: "│", Center: "│", Right: "│"},
	}

	StyleRoundedBox = Style{
		Top:    Line{Left: "╭", Center: "┬", Right: "╮", Fill: "─"},
		Middle: Line{Left: "├", Center: "┼", Right: "┤", Fill: "─"},
		Bottom: Line{Left: "╰", Center: "┴", Right: "╯", Fill: "─"},
		Cell:   Line{Left: "│", Center: "│", Right: "│"},
	}

	StyleHeavyBox = Style{
		Top:    Line{Left: "┏", Center: "┳", Right: "┓", Fill: "━"},
		Middle: Line{Left: "┣", Center: "╋", Right: "┫", Fill: "━"},
		Bottom: Line{Left: "┗", Center: "┻", Right: "┛", Fill: "━"},
		Cell:   Line{Left: "┃", Center: "┃", Right: "┃"},
	}

	StyleDoubleBox = Style{
		Top:    Line{Left: "╔", Center: "╦", Right: "╗", Fill: "═"},
		Middle: Line{Left: "╠", Center: "╬", Right: "╣", Fill: "═"},
		Bottom: Line{Left: "╚", Center: "╩", Right: "╝", Fill: "═"},
		Cell:   Line{Left: "║", Center: "║", Right: "║"},
	}

	StyleBorderlessASCII = Style{
		Middle: Line{Center: "+", Fill: "-"},
		Cell:   Line{Center: "|"},
	}

	StyleBorderlessBox = Style{
		Middle: Line{Center: "┼", Fill: "─"},
		Cell:   Line{Center: "│"},
	}

	StyleBorderlessHeavyBox = Style{
		Middle: Line{Center: "╋", Fill: "━"},
		Cell:   Line{Center: "┃"},
	}

	StyleBorderlessDoubleBox = Style{
		Middle: Line{Center: "╬", Fill: "═"},
		Cell:   Line{Center: "║"},
	}
)
