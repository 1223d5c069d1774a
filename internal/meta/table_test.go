package meta

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/bind/bindtest"
	"github.com/dbsmedya/dbmeta/internal/logger"
)

func strPtr(s string) *string { return &s }

func newSession(t *testing.T, src bind.Source, opts bind.Options) *bind.Session {
	t.Helper()
	s, err := bind.NewSession(src, opts, logger.NewNop())
	require.NoError(t, err)
	return s
}

func tableSource() *bindtest.Source {
	return bindtest.New().
		Rows(OpGetColumns,
			[]string{"TABLE_CAT", "TABLE_SCHEM", "TABLE_NAME", "COLUMN_NAME", "DATA_TYPE", "TYPE_NAME", "NULLABLE", "ORDINAL_POSITION", "IS_NULLABLE"},
			[]any{"shop", nil, "orders", "id", int64(4), "INT", int64(0), int64(1), "NO"},
			[]any{"shop", nil, "orders", "total", int64(3), "DECIMAL", int64(1), int64(2), "YES"},
		).
		Rows(OpGetPrimaryKeys,
			[]string{"TABLE_CAT", "TABLE_SCHEM", "TABLE_NAME", "COLUMN_NAME", "KEY_SEQ", "PK_NAME"},
			[]any{"shop", nil, "orders", "region", int64(2), "PRIMARY"},
			[]any{"shop", nil, "orders", "id", int64(1), "PRIMARY"},
		).
		Rows(OpGetIndexInfo,
			[]string{"TABLE_CAT", "TABLE_SCHEM", "TABLE_NAME", "NON_UNIQUE", "INDEX_QUALIFIER", "INDEX_NAME", "TYPE", "ORDINAL_POSITION", "COLUMN_NAME", "ASC_OR_DESC", "CARDINALITY", "PAGES", "FILTER_CONDITION"},
			[]any{"shop", nil, "orders", int64(0), nil, "PRIMARY", int64(3), int64(1), "id", "A", int64(10), int64(0), nil},
			[]any{"shop", nil, "orders", int64(1), nil, "idx_total", int64(3), int64(1), "total", "A", int64(8), int64(0), nil},
		).
		Rows(OpGetImportedKeys,
			[]string{"PKTABLE_CAT", "PKTABLE_SCHEM", "PKTABLE_NAME", "PKCOLUMN_NAME", "FKTABLE_CAT", "FKTABLE_SCHEM", "FKTABLE_NAME", "FKCOLUMN_NAME", "KEY_SEQ", "UPDATE_RULE", "DELETE_RULE", "FK_NAME", "PK_NAME", "DEFERRABILITY"},
			[]any{"shop", nil, "orders", "id", "shop", nil, "orders", "parent_id", int64(1), int64(3), int64(3), "fk_parent", "PRIMARY", int64(7)},
		)
}

func TestTableExpansion(t *testing.T) {
	src := tableSource()
	s := newSession(t, src, bind.DefaultOptions())

	table := &Table{TableCat: strPtr("shop"), TableName: "orders", TableType: "TABLE"}
	require.NoError(t, s.Expand(context.Background(), TableDescriptor, table))

	want := []*Column{
		{TableChild: TableChild{TableCat: strPtr("shop"), TableName: "orders"}, ColumnName: "id", DataType: 4, TypeName: "INT", OrdinalPosition: 1, IsNullable: "NO"},
		{TableChild: TableChild{TableCat: strPtr("shop"), TableName: "orders"}, ColumnName: "total", DataType: 3, TypeName: "DECIMAL", Nullable: 1, OrdinalPosition: 2, IsNullable: "YES"},
	}
	if diff := cmp.Diff(want, table.Columns, cmpopts.IgnoreUnexported(Column{})); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(table.Columns))
	}

	assert.Equal(t, []string{"id", "total"}, table.ColumnNames())
	assert.Equal(t, "total", table.ColumnByName("total").ColumnName)
	assert.Nil(t, table.ColumnByName("missing"))
	assert.Equal(t, []string{"id", "region"}, table.PrimaryKeyColumnNames())
	assert.Equal(t, "region", table.PrimaryKeys[0].ColumnName, "getter must not reorder")
	assert.Equal(t, []string{"total"}, table.IndexColumnNames("idx_total"))
	assert.True(t, table.IndexInfo[1].NonUnique)
	assert.Equal(t, int64(8), table.IndexInfo[1].Cardinality)

	require.Len(t, table.ImportedKeys, 1)
	fk := table.ImportedKeys[0]
	assert.Equal(t, "parent_id", fk.FkcolumnName)
	assert.Equal(t, int16(7), fk.Deferrability)
	assert.True(t, fk.SelfReferencing())

	for _, c := range table.Columns {
		assert.Equal(t, bind.Ref{Type: "table", Key: "shop..orders"}, c.Parent())
	}

	indexCalls := src.CallsTo(OpGetIndexInfo)
	require.Len(t, indexCalls, 1)
	assert.Equal(t, []any{"shop", nil, "orders", false, true}, indexCalls[0].Args)

	best := src.CallsTo(OpGetBestRowIdentifier)
	require.Len(t, best, 3)
	for i, scope := range []int32{BestRowTemporary, BestRowTransaction, BestRowSession} {
		assert.Equal(t, scope, best[i].Args[3])
	}

	diags := s.Diagnostics()
	assert.Zero(t, diags.Count(bind.CodeOperationFailure))
	assert.Positive(t, diags.Count(bind.CodeUnknownField))
	assert.Equal(t, 9, diags.Count(bind.CodeUnsupportedOperation), spew.Sdump(diags))
	assert.Equal(t, 1, src.MaxOpen())
}

func TestTableSuppression(t *testing.T) {
	src := tableSource()
	opts := bind.DefaultOptions()
	opts.Suppressions = []string{"table/indexInfo", "column/typeName", "column/tableCat"}
	s := newSession(t, src, opts)

	table := &Table{TableName: "orders"}
	require.NoError(t, s.Expand(context.Background(), TableDescriptor, table))

	assert.Empty(t, table.IndexInfo)
	assert.Empty(t, src.CallsTo(OpGetIndexInfo))
	require.Len(t, table.Columns, 2)
	assert.Empty(t, table.Columns[0].TypeName)
	assert.Nil(t, table.Columns[0].TableCat)
	assert.Equal(t, "orders", table.Columns[0].TableName)
	// Suppression paths name the concrete type, so other per-table types
	// keep their base fields.
	assert.Equal(t, strPtr("shop"), table.PrimaryKeys[0].TableCat)
}

func TestPortedKeySelfReferencing(t *testing.T) {
	k := PortedKey{PktableName: "a", FktableName: "b"}
	assert.False(t, k.SelfReferencing())
	k.FktableName = "a"
	assert.True(t, k.SelfReferencing())
	k.FktableSchem = strPtr("x")
	assert.False(t, k.SelfReferencing())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "", (&Metadata{}).Key())
	assert.Equal(t, "c", (&Catalog{TableCat: "c"}).Key())
	assert.Equal(t, "c.s", (&Schema{TableCatalog: strPtr("c"), TableSchem: "s"}).Key())
	assert.Equal(t, ".s.t", (&Table{TableSchem: strPtr("s"), TableName: "t"}).Key())
	assert.Equal(t, "c.s.p_1", (&Procedure{ProcedureCat: strPtr("c"), ProcedureSchem: strPtr("s"), ProcedureName: "p", SpecificName: "p_1"}).Key())
	assert.Equal(t, "..f", (&Function{SpecificName: "f"}).Key())
	assert.Equal(t, "c..u", (&UDT{TypeCat: strPtr("c"), TypeName: "u"}).Key())
}

func TestDeref(t *testing.T) {
	assert.Nil(t, Deref(nil))
	assert.Equal(t, "x", Deref(strPtr("x")))
}
