package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/extract"
	"github.com/dbsmedya/dbmeta/internal/meta"
)

// Counts returns the number of records of each descriptor type in m, keyed
// by type name in the order types are first met depth-first. The root
// record itself is not counted.
func Counts(m *meta.Metadata) *orderedmap.OrderedMap[string, int] {
	counts := orderedmap.NewOrderedMap[string, int]()
	if m == nil {
		return counts
	}
	bind.Walk(meta.MetadataDescriptor, m, func(t *bind.Type, _ any, parentType *bind.Type, _ any) {
		if parentType == nil {
			return
		}
		n, _ := counts.Get(t.Name)
		counts.Set(t.Name, n+1)
	})
	return counts
}

// DiagnosticCounts returns the number of diagnostics per code in the order
// codes were first recorded.
func DiagnosticCounts(ds bind.Diagnostics) *orderedmap.OrderedMap[string, int] {
	counts := orderedmap.NewOrderedMap[string, int]()
	for _, d := range ds {
		n, _ := counts.Get(string(d.Code))
		counts.Set(string(d.Code), n+1)
	}
	return counts
}

// Summary prints the outcome of an extraction run against source.
func (p *Printer) Summary(res *extract.Result, source string) {
	p.Header("Metadata Extraction: %s", source)
	p.println()

	state := p.paint(color.New(color.FgGreen, color.OpBold), res.State.String())
	if res.State == extract.StateFailed {
		state = p.paint(color.New(color.FgRed, color.OpBold), res.State.String())
	}

	p.Section("Run")
	p.keyValues([][2]string{
		{"State", state},
		{"Duration", res.Stats.Duration.Round(time.Millisecond).String()},
		{"Records bound", strconv.FormatInt(res.Stats.RecordsBound, 10)},
		{"Invocations", strconv.FormatInt(res.Stats.Invocations, 10)},
		{"Cross references", strconv.FormatInt(res.Stats.CrossReferenceCalls, 10)},
		{"Synthesized", strconv.FormatInt(res.Stats.Synthesized, 10)},
		{"Records/s", fmt.Sprintf("%.1f", res.Stats.RecordsPerSecond())},
	})

	p.println()
	p.Section("Records")
	counts := Counts(res.Metadata)
	if counts.Len() == 0 {
		p.println("  none")
	}
	p.counts(counts, color.Style{})

	p.println()
	p.Section("Diagnostics")
	diags := DiagnosticCounts(res.Diagnostics)
	if diags.Len() == 0 {
		p.println("  none")
		return
	}
	p.counts(diags, color.New(color.FgYellow))
	if severe := len(res.Diagnostics.Severe()); severe > 0 {
		p.printf("  %s\n", p.paint(color.New(color.FgRed), fmt.Sprintf("%d severe", severe)))
	}
}

// counts prints name/count pairs with right aligned counts.
func (p *Printer) counts(m *orderedmap.OrderedMap[string, int], style color.Style) {
	nameWidth, countWidth := 0, 0
	for el := m.Front(); el != nil; el = el.Next() {
		nameWidth = max(nameWidth, runewidth.StringWidth(el.Key))
		countWidth = max(countWidth, len(strconv.Itoa(el.Value)))
	}
	for el := m.Front(); el != nil; el = el.Next() {
		name := runewidth.FillRight(el.Key, nameWidth)
		if len(style) > 0 {
			name = p.paint(style, name)
		}
		p.printf("  %s  %s\n", name, runewidth.FillLeft(strconv.Itoa(el.Value), countWidth))
	}
}
