package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Plain", input: "VIEW", expected: "'VIEW'"},
		{name: "Space", input: "BASE TABLE", expected: "'BASE TABLE'"},
		{name: "Single quote", input: "it's", expected: "'it''s'"},
		{name: "Consecutive quotes", input: "a''b", expected: "'a''''b'"},
		{name: "Empty string", input: "", expected: "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteString(tt.input))
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		quote    string
		expected string
	}{
		{name: "Simple backtick", input: "users", quote: "`", expected: "`users`"},
		{name: "Mixed case", input: "MyTable", quote: "`", expected: "`MyTable`"},
		{name: "Embedded backtick", input: "my`table", quote: "`", expected: "`my``table`"},
		{name: "Only backticks", input: "``", quote: "`", expected: "``````"},
		{name: "Double quote", input: "PRECISION", quote: `"`, expected: `"PRECISION"`},
		{name: "Embedded double quote", input: `a"b`, quote: `"`, expected: `"a""b"`},
		{name: "Empty string", input: "", quote: "`", expected: "``"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteIdentifier(tt.input, tt.quote))
		})
	}
}

func TestQuoteList(t *testing.T) {
	assert.Equal(t, "'TABLE', 'VIEW'", QuoteList("TABLE", "VIEW"))
	assert.Equal(t, "", QuoteList())
}

func TestRebind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "No placeholders",
			input:    "SELECT 1",
			expected: "SELECT 1",
		},
		{
			name:     "Sequential placeholders",
			input:    "SELECT * FROM t WHERE a = ? AND b LIKE ?",
			expected: "SELECT * FROM t WHERE a = $1 AND b LIKE $2",
		},
		{
			name:     "Literal question mark",
			input:    "SELECT '?' FROM t WHERE a = ?",
			expected: "SELECT '?' FROM t WHERE a = $1",
		},
		{
			name:     "Quoted identifier",
			input:    `SELECT "odd?" FROM t WHERE a = ? OR b = ?`,
			expected: `SELECT "odd?" FROM t WHERE a = $1 OR b = $2`,
		},
		{
			name:     "Escaped quote inside literal",
			input:    "SELECT 'it''s?' WHERE x = ?",
			expected: "SELECT 'it''s?' WHERE x = $1",
		},
		{
			name:     "Coalesce",
			input:    "COALESCE(?, current_database())",
			expected: "COALESCE($1, current_database())",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Rebind(tt.input))
		})
	}
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "%", Pattern(nil))
	assert.Equal(t, "ord%", Pattern("ord%"))
}
