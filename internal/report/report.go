// Package report prints human readable run summaries and binding plans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Printer writes reports to a terminal or any other writer.
type Printer struct {
	w       io.Writer
	colored bool
}

// New returns a printer writing to w. Colors are emitted only when colored
// is set.
func New(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, colored: colored}
}

func (p *Printer) paint(style color.Style, s string) string {
	if !p.colored {
		return s
	}
	return style.Sprint(s)
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// Header prints a framed title.
func (p *Printer) Header(format string, args ...any) {
	title := fmt.Sprintf(format, args...)
	width := runewidth.StringWidth(title) + 4
	p.println(strings.Repeat("=", width))
	p.printf("  %s\n", p.paint(color.New(color.OpBold), title))
	p.println(strings.Repeat("=", width))
}

// Section prints a section title.
func (p *Printer) Section(title string) {
	p.printf("[%s]\n", p.paint(color.New(color.FgCyan), title))
	p.println(strings.Repeat("-", runewidth.StringWidth(title)+2))
}

// keyValues prints aligned "key: value" lines.
func (p *Printer) keyValues(pairs [][2]string) {
	width := 0
	for _, kv := range pairs {
		if w := runewidth.StringWidth(kv[0]); w > width {
			width = w
		}
	}
	for _, kv := range pairs {
		p.printf("  %s  %s\n", runewidth.FillRight(kv[0]+":", width+1), kv[1])
	}
}

// sideBySide prints two blocks of lines next to each other, at least padding
// columns apart. Widths account for wide runes and ignore color codes.
func (p *Printer) sideBySide(left, right []string, padding int) {
	leftWidth := 0
	for _, line := range left {
		if w := visualWidth(line); w > leftWidth {
			leftWidth = w
		}
	}

	height := max(len(left), len(right))
	for i := 0; i < height; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		if r == "" {
			p.println(strings.TrimRight(l, " "))
			continue
		}
		p.printf("%s%s%s\n", l, strings.Repeat(" ", leftWidth-visualWidth(l)+padding), r)
	}
}

// visualWidth returns the terminal width of s.
func visualWidth(s string) int {
	return runewidth.StringWidth(color.ClearCode(s))
}
