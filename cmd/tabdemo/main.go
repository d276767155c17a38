// Command tabdemo renders sample tables with the tabulator package, or
// tabulates stdin using a YAML column layout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabulator"
)

var rootCmd = &cobra.Command{
	Use:          "tabdemo",
	Short:        "Render sample tables with the tabulator package",
	Long:         "Without flags, tabdemo renders a gallery of layout examples.\nWith --config, it tabulates tab-separated rows from stdin using a YAML column layout.",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().String("style", "box", "border style, one of: "+strings.Join(tabulator.StyleNames(), ", "))
	rootCmd.Flags().String("config", "", "YAML column layout; rows are read from stdin as tab-separated values")
	rootCmd.Flags().Bool("list-styles", false, "list the known style names and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if list, _ := cmd.Flags().GetBool("list-styles"); list {
		for _, name := range tabulator.StyleNames() {
			fmt.Println(name)
		}
		return nil
	}

	styleName, _ := cmd.Flags().GetString("style")
	style, err := tabulator.ParseStyle(styleName)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return tabulate(cmd.OutOrStdout(), cmd.InOrStdin(), path, style)
	}
	return gallery(cmd.OutOrStdout(), style)
}

// layoutSpec is the YAML shape of a --config file.
type layoutSpec struct {
	Columns []columnSpec `yaml:"columns"`
}

type columnSpec struct {
	Width    int     `yaml:"width"`
	Justify  string  `yaml:"justify"`
	Truncate string  `yaml:"truncate"`
	Wrap     string  `yaml:"wrap"`
	Ellipsis string  `yaml:"ellipsis"`
	LeftPad  *string `yaml:"leftPad"`
	RightPad *string `yaml:"rightPad"`
}

func (s columnSpec) cell() (*tabulator.Cell, error) {
	c := tabulator.NewCell(s.Width)
	switch s.Justify {
	case "", "left":
	case "center":
		c.SetJustify(tabulator.JustifyCenter)
	case "right":
		c.SetJustify(tabulator.JustifyRight)
	default:
		return nil, fmt.Errorf("unknown justify %q", s.Justify)
	}
	switch s.Truncate {
	case "", "none":
	case "left":
		c.SetTruncate(tabulator.TruncateLeft)
	case "right":
		c.SetTruncate(tabulator.TruncateRight)
	default:
		return nil, fmt.Errorf("unknown truncate %q", s.Truncate)
	}
	switch s.Wrap {
	case "", "character":
	case "word":
		c.SetWrap(tabulator.WrapWord)
	default:
		return nil, fmt.Errorf("unknown wrap %q", s.Wrap)
	}
	if s.Ellipsis != "" {
		c.SetEllipsis(s.Ellipsis)
	}
	left, right := " ", " "
	if s.LeftPad != nil {
		left = *s.LeftPad
	}
	if s.RightPad != nil {
		right = *s.RightPad
	}
	c.SetPad(left, right)
	return c, nil
}

func loadLayout(path string) ([]*tabulator.Cell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec layoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(spec.Columns) == 0 {
		return nil, fmt.Errorf("%s: no columns defined", path)
	}
	cells := make([]*tabulator.Cell, len(spec.Columns))
	for i, cs := range spec.Columns {
		if cells[i], err = cs.cell(); err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", path, i, err)
		}
	}
	return cells, nil
}

func tabulate(w io.Writer, r io.Reader, configPath string, style tabulator.Style) error {
	cells, err := loadLayout(configPath)
	if err != nil {
		return err
	}
	tab := tabulator.New(w, cells...)
	tab.SetStyle(style)
	if err := tab.TopLine(); err != nil {
		return err
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := tab.WriteRow(strings.Split(sc.Text(), "\t")...); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return tab.BottomLine()
}

type section struct {
	title string
	rows  func(*tabulator.Tabulator) error
}

func gallery(w io.Writer, style tabulator.Style) error {
	heading := color.New(color.Bold).FprintlnFunc()

	sections := []section{
		{"Justification", func(tab *tabulator.Tabulator) error {
			tab.CurrentCell().SetJustify(tabulator.JustifyLeft)
			if err := tab.WriteRow("left"); err != nil {
				return err
			}
			if err := tab.HorizLine(); err != nil {
				return err
			}
			tab.CurrentCell().SetJustify(tabulator.JustifyCenter)
			if err := tab.WriteRow("center"); err != nil {
				return err
			}
			if err := tab.HorizLine(); err != nil {
				return err
			}
			tab.CurrentCell().SetJustify(tabulator.JustifyRight)
			return tab.WriteRow("right")
		}},
		{"Wrapping", func(tab *tabulator.Tabulator) error {
			tab.CurrentCell().SetWrap(tabulator.WrapCharacter)
			if err := tab.WriteRow("This is an example of character wrapping"); err != nil {
				return err
			}
			if err := tab.HorizLine(); err != nil {
				return err
			}
			tab.CurrentCell().SetWrap(tabulator.WrapWord)
			return tab.WriteRow("This is an example of word wrapping")
		}},
		{"Truncation", func(tab *tabulator.Tabulator) error {
			tab.CurrentCell().SetTruncate(tabulator.TruncateRight)
			if err := tab.WriteRow("This is an example of truncation"); err != nil {
				return err
			}
			if err := tab.HorizLine(); err != nil {
				return err
			}
			tab.CurrentCell().SetTruncate(tabulator.TruncateLeft)
			return tab.WriteRow("This is an example of truncation")
		}},
	}

	for _, s := range sections {
		heading(w, s.title)
		tab := tabulator.New(w, tabulator.NewCell(25))
		tab.SetStyle(style)
		if err := tab.TopLine(); err != nil {
			return err
		}
		if err := s.rows(tab); err != nil {
			return err
		}
		if err := tab.BottomLine(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	heading(w, "Multibyte characters")
	tab := tabulator.New(w, tabulator.Columns(12, 12)...)
	tab.SetStyle(style)
	tab.CurrentCell().SetWrap(tabulator.WrapWord)
	if err := tab.TopLine(); err != nil {
		return err
	}
	if err := tab.WriteRow("English", "Ελληνικά"); err != nil {
		return err
	}
	if err := tab.HorizLine(); err != nil {
		return err
	}
	if err := tab.WriteRow("Hello World.", "Γειά σου Κόσμε."); err != nil {
		return err
	}
	if err := tab.BottomLine(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	heading(w, "Incremental rows")
	tab = tabulator.New(w, tabulator.Columns(10, 10)...)
	tab.SetStyle(style)
	if err := tab.TopLine(); err != nil {
		return err
	}
	if _, err := io.WriteString(tab, "Steps"); err != nil {
		return err
	}
	if err := tab.EndColumn(); err != nil {
		return err
	}
	for _, step := range []string{"3... ", "2... ", "1... "} {
		if _, err := io.WriteString(tab, step); err != nil {
			return err
		}
		if err := tab.Flush(); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(tab, "DONE"); err != nil {
		return err
	}
	if err := tab.EndColumn(); err != nil {
		return err
	}
	return tab.BottomLine()
}
