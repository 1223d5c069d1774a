// Package sqlutil holds SQL text helpers shared by the metadata dialects.
package sqlutil

import (
	"strconv"
	"strings"
)

// QuoteString renders s as a single-quoted SQL string literal, doubling any
// embedded quotes.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteIdentifier quotes an identifier with the dialect's quote string,
// doubling any embedded quote.
func QuoteIdentifier(name, quote string) string {
	return quote + strings.ReplaceAll(name, quote, quote+quote) + quote
}

// QuoteList renders values as a comma separated list of string literals,
// suitable for an IN clause.
func QuoteList(values ...string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = QuoteString(v)
	}
	return strings.Join(quoted, ", ")
}

// Rebind rewrites ? placeholders into PostgreSQL's numbered $n form. Question
// marks inside string literals and quoted identifiers are left alone.
func Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	var quote byte
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Pattern returns v, or the match-all LIKE pattern when v is nil.
func Pattern(v any) any {
	if v == nil {
		return "%"
	}
	return v
}
