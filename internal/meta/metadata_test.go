package meta

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/bind/bindtest"
)

func TestMetadataExpansion_AllUnsupported(t *testing.T) {
	src := bindtest.New()
	s := newSession(t, src, bind.DefaultOptions())

	m := &Metadata{}
	require.NoError(t, s.Expand(context.Background(), MetadataDescriptor, m))

	// 19 scalars, 10 result set type probes over 3 types, 6 concurrency
	// pairs, 2 holdabilities, 5 isolation levels, 49 convert pairs and 4
	// tabular operations.
	const probes = 19 + 30 + 6 + 2 + 5 + 49 + 4
	assert.Equal(t, int64(probes), s.Stats().Invocations)
	assert.Equal(t, probes, s.Diagnostics().Count(bind.CodeUnsupportedOperation))
	assert.Empty(t, s.Diagnostics().Severe())
	assert.Empty(t, m.Catalogs)
	assert.Empty(t, m.DeletesAreDetected)
}

func TestMetadataExpansion_ScalarsAndFacts(t *testing.T) {
	src := bindtest.New().
		Value(OpGetDatabaseProductName, "MySQL").
		Value(OpGetDatabaseMajorVersion, int64(8)).
		Value(OpIsReadOnly, int64(1)).
		Value(OpGetDefaultIsolation, "4").
		ValueFunc(OpSupportsConvert, func(args []any) any {
			if len(args) == 0 {
				return true
			}
			return args[0] == args[1]
		}).
		ValueFunc(OpSupportsIsolationLevel, func(args []any) any {
			return args[0].(int32) >= TransactionReadCommitted
		}).
		ValueFunc(OpDeletesAreDetected, func(args []any) any { return int64(0) }).
		Rows(OpGetTableTypes, []string{"TABLE_TYPE"}, []any{"TABLE"}, []any{"VIEW"}).
		Rows(OpGetCatalogs, []string{"TABLE_CAT"}, []any{"shop"}, []any{"crm"}).
		Rows(OpGetSchemas, []string{"TABLE_SCHEM", "TABLE_CATALOG"})

	s := newSession(t, src, bind.DefaultOptions())
	m := &Metadata{}
	require.NoError(t, s.Expand(context.Background(), MetadataDescriptor, m))

	assert.Equal(t, "MySQL", m.DatabaseProductName)
	assert.Equal(t, int32(8), m.DatabaseMajorVersion)
	assert.True(t, m.ReadOnly)
	assert.Equal(t, TransactionRepeatableRead, m.DefaultTransactionIsolation)
	assert.True(t, m.SupportsConvert)

	require.Len(t, m.SupportsConvertTypes, 49)
	same := 0
	for _, f := range m.SupportsConvertTypes {
		if f.Value {
			assert.Equal(t, f.FromType, f.ToType)
			same++
		}
	}
	assert.Equal(t, 7, same)

	assert.Equal(t, []IsolationFact{
		{Level: TransactionNone, Value: false},
		{Level: TransactionReadUncommitted, Value: false},
		{Level: TransactionReadCommitted, Value: true},
		{Level: TransactionRepeatableRead, Value: true},
		{Level: TransactionSerializable, Value: true},
	}, m.SupportsTransactionIsolationLevel)

	require.Len(t, m.DeletesAreDetected, 3)
	assert.Equal(t, ResultSetTypeFact{Type: TypeForwardOnly, Value: false}, m.DeletesAreDetected[0])

	require.Len(t, m.TableTypes, 2)
	assert.Equal(t, "VIEW", m.TableTypes[1].TableType)
	assert.Equal(t, bind.Ref{Type: "metadata"}, m.TableTypes[1].Parent())

	require.Len(t, m.Catalogs, 2)
	assert.Empty(t, m.Catalogs[0].Schemas)
	calls := src.CallsTo(OpGetSchemas)
	require.Len(t, calls, 2)
	assert.Equal(t, []any{"crm", nil}, calls[1].Args)
}

func TestFactConstructors(t *testing.T) {
	assert.Equal(t, ConcurrencyFact{Type: 1003, Concurrency: 1008, Value: true},
		newConcurrencyFact([]any{int32(1003), int32(1008)}, true))
	assert.Equal(t, HoldabilityFact{Holdability: 2}, newHoldabilityFact([]any{int32(2)}, false))
	assert.Equal(t, ConvertFact{FromType: -5}, newConvertFact([]any{int64(-5)}, false))
}

func TestIndex(t *testing.T) {
	m := &Metadata{}
	cat := &Catalog{TableCat: "shop"}
	schema := &Schema{TableSchem: "", TableCatalog: strPtr("shop")}
	table := &Table{TableCat: strPtr("shop"), TableName: "orders"}
	col := &Column{ColumnName: "id"}

	m.Catalogs = []*Catalog{cat}
	cat.Schemas = []*Schema{schema}
	cat.SetParent(bind.RefOf(MetadataDescriptor, m))
	schema.Tables = []*Table{table}
	schema.SetParent(bind.RefOf(CatalogDescriptor, cat))
	table.Columns = []*Column{col}
	table.SetParent(bind.RefOf(SchemaDescriptor, schema))
	col.SetParent(bind.RefOf(TableDescriptor, table))

	idx := NewIndex(m)
	assert.Equal(t, 4, idx.Len())
	assert.Same(t, table, idx.TableOf(col))
	assert.Same(t, schema, idx.ParentOf(table))
	assert.Same(t, m, idx.ParentOf(cat))
	assert.Nil(t, idx.ParentOf(m))
	assert.Nil(t, idx.Get(bind.Ref{Type: "table", Key: "nope"}))

	assert.Equal(t, 0, NewIndex(nil).Len())
	assert.Equal(t, []*Table{table}, m.Tables())
	assert.Same(t, table, schema.Table("orders"))
	assert.Nil(t, schema.Table("missing"))
}
