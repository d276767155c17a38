package tabulator

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle is returned by [ParseStyle] for unrecognized names.
var ErrUnknownStyle = errors.New("unknown style")

type namedStyle struct {
	name  string
	style Style
}

var namedStyles = []namedStyle{
	{"empty", StyleEmpty},
	{"ascii", StyleASCII},
	{"markdown", StyleMarkdown},
	{"box", StyleBox},
	{"rounded-box", StyleRoundedBox},
	{"heavy-box", StyleHeavyBox},
	{"double-box", StyleDoubleBox},
	{"borderless-ascii", StyleBorderlessASCII},
	{"borderless-box", StyleBorderlessBox},
	{"borderless-heavy-box", StyleBorderlessHeavyBox},
	{"borderless-double-box", StyleBorderlessDoubleBox},
}

// StyleNames returns the known style names in stable order, suitable for
// CLI flag help.
func StyleNames() []string {
	out := make([]string, len(namedStyles))
	for i, ns := range namedStyles {
		out[i] = ns.name
	}
	return out
}

// ParseStyle resolves a style name, typically from a CLI flag.
func ParseStyle(s string) (Style, error) {
	for _, ns := range namedStyles {
		if ns.name == s {
			return ns.style, nil
		}
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}
