package sqlutil

import (
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// CaseMap maps database type names onto numeric codes and renders the
// mapping as a SQL CASE expression. Keys are matched case-insensitively and
// rendered in insertion order.
type CaseMap struct {
	codes *orderedmap.OrderedMap[string, int32]
	def   int32
}

// NewCaseMap returns an empty map whose unmatched names yield def.
func NewCaseMap(def int32) *CaseMap {
	return &CaseMap{codes: orderedmap.NewOrderedMap[string, int32](), def: def}
}

// Set maps name to code. A repeated name keeps its original position.
func (m *CaseMap) Set(name string, code int32) *CaseMap {
	m.codes.Set(strings.ToUpper(name), code)
	return m
}

// Code returns the code for name, or the default.
func (m *CaseMap) Code(name string) int32 {
	if v, ok := m.codes.Get(strings.ToUpper(name)); ok {
		return v
	}
	return m.def
}

// Len returns the number of mapped names.
func (m *CaseMap) Len() int {
	return m.codes.Len()
}

// Names returns the mapped names in insertion order.
func (m *CaseMap) Names() []string {
	return m.codes.Keys()
}

// SQL renders the mapping applied to expr.
// Example: CASE UPPER(data_type) WHEN 'INT' THEN 4 ELSE 1111 END
func (m *CaseMap) SQL(expr string) string {
	if m.codes.Len() == 0 {
		return strconv.FormatInt(int64(m.def), 10)
	}
	var b strings.Builder
	b.WriteString("CASE UPPER(")
	b.WriteString(expr)
	b.WriteString(")")
	for el := m.codes.Front(); el != nil; el = el.Next() {
		b.WriteString(" WHEN ")
		b.WriteString(QuoteString(el.Key))
		b.WriteString(" THEN ")
		b.WriteString(strconv.FormatInt(int64(el.Value), 10))
	}
	b.WriteString(" ELSE ")
	b.WriteString(strconv.FormatInt(int64(m.def), 10))
	b.WriteString(" END")
	return b.String()
}
