package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/dbmeta/internal/bind"
)

func TestRowLookup(t *testing.T) {
	row := bind.NewRow([]string{"TABLE_CAT", "table_name", "X", "x"}, []any{"db", "users", 1, 2})

	v, found, amb := row.Lookup("table_cat")
	assert.Equal(t, "db", v)
	assert.True(t, found)
	assert.False(t, amb)

	v, found, _ = row.Lookup("TABLE_NAME")
	assert.Equal(t, "users", v)
	assert.True(t, found)

	_, found, amb = row.Lookup("X")
	assert.True(t, found)
	assert.True(t, amb)

	_, found, _ = row.Lookup("REMARKS")
	assert.False(t, found)

	assert.Equal(t, []string{"TABLE_CAT", "table_name", "X", "x"}, row.Labels())
}

func TestRowShortValues(t *testing.T) {
	row := bind.NewRow([]string{"A", "B"}, []any{"a"})
	v, found, _ := row.Lookup("B")
	assert.True(t, found)
	assert.Nil(t, v)
}
