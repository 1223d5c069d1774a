package bind

import "strings"

// Row is one tabular result row addressed by column label. Labels are matched
// case-insensitively; a label present more than once is ambiguous.
type Row struct {
	labels []string
	values []any
	index  map[string]int
}

const ambiguous = -1

// NewRow pairs labels with values by position. Missing values read as nil.
func NewRow(labels []string, values []any) Row {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		key := fold(label)
		if _, seen := index[key]; seen {
			index[key] = ambiguous
			continue
		}
		index[key] = i
	}
	return Row{labels: labels, values: values, index: index}
}

// Labels returns the row's column labels in source order.
func (r Row) Labels() []string {
	return r.labels
}

// Lookup returns the value under label. found is false when no column carries
// the label; ambiguous is true when more than one does.
func (r Row) Lookup(label string) (value any, found, isAmbiguous bool) {
	i, ok := r.index[fold(label)]
	switch {
	case !ok:
		return nil, false, false
	case i == ambiguous:
		return nil, true, true
	case i >= len(r.values):
		return nil, true, false
	}
	return r.values[i], true, false
}

func fold(label string) string {
	return strings.ToUpper(label)
}
