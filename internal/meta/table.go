package meta

import (
	"cmp"
	"slices"

	"github.com/dbsmedya/dbmeta/internal/bind"
)

// Table is one getTables row with its per-table collections.
type Table struct {
	node                   `yaml:"-" json:"-"`
	TableCat               *string `yaml:"tableCat" json:"tableCat"`
	TableSchem             *string `yaml:"tableSchem" json:"tableSchem"`
	TableName              string  `yaml:"tableName" json:"tableName"`
	TableType              string  `yaml:"tableType" json:"tableType"`
	Remarks                *string `yaml:"remarks" json:"remarks"`
	TypeCat                *string `yaml:"typeCat" json:"typeCat"`
	TypeSchem              *string `yaml:"typeSchem" json:"typeSchem"`
	TypeName               *string `yaml:"typeName" json:"typeName"`
	SelfReferencingColName *string `yaml:"selfReferencingColName" json:"selfReferencingColName"`
	RefGeneration          *string `yaml:"refGeneration" json:"refGeneration"`

	Columns            []*Column            `yaml:"columns,omitempty" json:"columns,omitempty"`
	ColumnPrivileges   []*ColumnPrivilege   `yaml:"columnPrivileges,omitempty" json:"columnPrivileges,omitempty"`
	TablePrivileges    []*TablePrivilege    `yaml:"tablePrivileges,omitempty" json:"tablePrivileges,omitempty"`
	PrimaryKeys        []*PrimaryKey        `yaml:"primaryKeys,omitempty" json:"primaryKeys,omitempty"`
	ImportedKeys       []*ImportedKey       `yaml:"importedKeys,omitempty" json:"importedKeys,omitempty"`
	ExportedKeys       []*ExportedKey       `yaml:"exportedKeys,omitempty" json:"exportedKeys,omitempty"`
	IndexInfo          []*IndexInfo         `yaml:"indexInfo,omitempty" json:"indexInfo,omitempty"`
	BestRowIdentifiers []*BestRowIdentifier `yaml:"bestRowIdentifiers,omitempty" json:"bestRowIdentifiers,omitempty"`
	VersionColumns     []*VersionColumn     `yaml:"versionColumns,omitempty" json:"versionColumns,omitempty"`
	PseudoColumns      []*PseudoColumn      `yaml:"pseudoColumns,omitempty" json:"pseudoColumns,omitempty"`
	SuperTables        []*SuperTable        `yaml:"superTables,omitempty" json:"superTables,omitempty"`
}

// Key implements bind.Keyed.
func (t *Table) Key() string {
	return key(str(t.TableCat), str(t.TableSchem), t.TableName)
}

// ColumnNames returns the column names in ordinal order as bound.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.ColumnName)
	}
	return names
}

// ColumnByName returns the column named name, or nil.
func (t *Table) ColumnByName(name string) *Column {
	for _, c := range t.Columns {
		if c.ColumnName == name {
			return c
		}
	}
	return nil
}

// IndexColumnNames returns the columns of index indexName by ordinal position.
func (t *Table) IndexColumnNames(indexName string) []string {
	var names []string
	for _, ii := range t.IndexInfo {
		if str(ii.IndexName) == indexName && ii.ColumnName != nil {
			names = append(names, *ii.ColumnName)
		}
	}
	return names
}

// PrimaryKeyColumnNames returns the primary key columns ordered by key sequence.
func (t *Table) PrimaryKeyColumnNames() []string {
	keys := slices.Clone(t.PrimaryKeys)
	slices.SortStableFunc(keys, func(a, b *PrimaryKey) int {
		return cmp.Compare(a.KeySeq, b.KeySeq)
	})
	names := make([]string, len(keys))
	for i, pk := range keys {
		names[i] = pk.ColumnName
	}
	return names
}

// tableArgs are the catalog, schema and name of the table being expanded.
var (
	tableCatRef   = bind.Back("tableCat", func(t *Table) any { return t.TableCat })
	tableSchemRef = bind.Back("tableSchem", func(t *Table) any { return t.TableSchem })
	tableNameRef  = bind.Back("tableName", func(t *Table) any { return t.TableName })
)

func perTable(op string, extra ...bind.Kind) bind.Call {
	params := append([]bind.Kind{bind.KindNullString, bind.KindNullString, bind.KindString}, extra...)
	return bind.Invoke(op, params...)
}

func bestRowIdentifierCall() bind.Call {
	c := perTable(OpGetBestRowIdentifier, bind.KindInt32, bind.KindBool)
	for _, scope := range bestRowScopes {
		c = c.With(tableCatRef, tableSchemRef, tableNameRef, bind.Literal(scope), bind.Literal(true))
	}
	return c
}

// TableDescriptor binds getTables rows.
var TableDescriptor = bind.NewType[Table]("table",
	bind.NullString("tableCat", "TABLE_CAT", func(t *Table) **string { return &t.TableCat }),
	bind.NullString("tableSchem", "TABLE_SCHEM", func(t *Table) **string { return &t.TableSchem }),
	bind.String("tableName", "TABLE_NAME", func(t *Table) *string { return &t.TableName }),
	bind.String("tableType", "TABLE_TYPE", func(t *Table) *string { return &t.TableType }),
	bind.NullString("remarks", "REMARKS", func(t *Table) **string { return &t.Remarks }),
	bind.NullString("typeCat", "TYPE_CAT", func(t *Table) **string { return &t.TypeCat }),
	bind.NullString("typeSchem", "TYPE_SCHEM", func(t *Table) **string { return &t.TypeSchem }),
	bind.NullString("typeName", "TYPE_NAME", func(t *Table) **string { return &t.TypeName }),
	bind.NullString("selfReferencingColName", "SELF_REFERENCING_COL_NAME", func(t *Table) **string { return &t.SelfReferencingColName }),
	bind.NullString("refGeneration", "REF_GENERATION", func(t *Table) **string { return &t.RefGeneration }),

	bind.Rows("columns", ColumnDescriptor, func(t *Table) *[]*Column { return &t.Columns },
		perTable(OpGetColumns, bind.KindNullString).With(tableCatRef, tableSchemRef, tableNameRef, bind.Literal("%"))),
	bind.Rows("columnPrivileges", ColumnPrivilegeDescriptor, func(t *Table) *[]*ColumnPrivilege { return &t.ColumnPrivileges },
		perTable(OpGetColumnPrivileges, bind.KindNullString).With(tableCatRef, tableSchemRef, tableNameRef, bind.Literal("%"))),
	bind.Rows("tablePrivileges", TablePrivilegeDescriptor, func(t *Table) *[]*TablePrivilege { return &t.TablePrivileges },
		perTable(OpGetTablePrivileges).With(tableCatRef, tableSchemRef, tableNameRef)),
	bind.Rows("primaryKeys", PrimaryKeyDescriptor, func(t *Table) *[]*PrimaryKey { return &t.PrimaryKeys },
		perTable(OpGetPrimaryKeys).With(tableCatRef, tableSchemRef, tableNameRef)),
	bind.Rows("importedKeys", ImportedKeyDescriptor, func(t *Table) *[]*ImportedKey { return &t.ImportedKeys },
		perTable(OpGetImportedKeys).With(tableCatRef, tableSchemRef, tableNameRef)),
	bind.Rows("exportedKeys", ExportedKeyDescriptor, func(t *Table) *[]*ExportedKey { return &t.ExportedKeys },
		perTable(OpGetExportedKeys).With(tableCatRef, tableSchemRef, tableNameRef)),
	bind.Rows("indexInfo", IndexInfoDescriptor, func(t *Table) *[]*IndexInfo { return &t.IndexInfo },
		perTable(OpGetIndexInfo, bind.KindBool, bind.KindBool).With(tableCatRef, tableSchemRef, tableNameRef, bind.Literal(false), bind.Literal(true))),
	bind.Rows("bestRowIdentifiers", BestRowIdentifierDescriptor, func(t *Table) *[]*BestRowIdentifier { return &t.BestRowIdentifiers },
		bestRowIdentifierCall()),
	bind.Rows("versionColumns", VersionColumnDescriptor, func(t *Table) *[]*VersionColumn { return &t.VersionColumns },
		perTable(OpGetVersionColumns).With(tableCatRef, tableSchemRef, tableNameRef)),
	bind.Rows("pseudoColumns", PseudoColumnDescriptor, func(t *Table) *[]*PseudoColumn { return &t.PseudoColumns },
		perTable(OpGetPseudoColumns, bind.KindNullString).With(tableCatRef, tableSchemRef, tableNameRef, bind.Literal("%"))),
	bind.Rows("superTables", SuperTableDescriptor, func(t *Table) *[]*SuperTable { return &t.SuperTables },
		perTable(OpGetSuperTables).With(tableCatRef, tableSchemRef, tableNameRef)),
)

// TableChild holds the table coordinates of records listed per table.
type TableChild struct {
	TableCat   *string `yaml:"tableCat" json:"tableCat"`
	TableSchem *string `yaml:"tableSchem" json:"tableSchem"`
	TableName  string  `yaml:"tableName" json:"tableName"`
}

// TableChildDescriptor is the abstract base of per-table records.
var TableChildDescriptor = bind.NewBase("tableChild",
	bind.NullString("tableCat", "TABLE_CAT", func(r *TableChild) **string { return &r.TableCat }),
	bind.NullString("tableSchem", "TABLE_SCHEM", func(r *TableChild) **string { return &r.TableSchem }),
	bind.String("tableName", "TABLE_NAME", func(r *TableChild) *string { return &r.TableName }),
)

// Column is one getColumns row.
type Column struct {
	node              `yaml:"-" json:"-"`
	TableChild        `yaml:",inline"`
	ColumnName        string  `yaml:"columnName" json:"columnName"`
	DataType          int32   `yaml:"dataType" json:"dataType"`
	TypeName          string  `yaml:"typeName" json:"typeName"`
	ColumnSize        *int32  `yaml:"columnSize" json:"columnSize"`
	BufferLength      *int32  `yaml:"bufferLength" json:"bufferLength"`
	DecimalDigits     *int32  `yaml:"decimalDigits" json:"decimalDigits"`
	NumPrecRadix      *int32  `yaml:"numPrecRadix" json:"numPrecRadix"`
	Nullable          int32   `yaml:"nullable" json:"nullable"`
	Remarks           *string `yaml:"remarks" json:"remarks"`
	ColumnDef         *string `yaml:"columnDef" json:"columnDef"`
	SQLDataType       *int32  `yaml:"sqlDataType" json:"sqlDataType"`
	SQLDatetimeSub    *int32  `yaml:"sqlDatetimeSub" json:"sqlDatetimeSub"`
	CharOctetLength   *int32  `yaml:"charOctetLength" json:"charOctetLength"`
	OrdinalPosition   int32   `yaml:"ordinalPosition" json:"ordinalPosition"`
	IsNullable        string  `yaml:"isNullable" json:"isNullable"`
	ScopeCatalog      *string `yaml:"scopeCatalog" json:"scopeCatalog"`
	ScopeSchema       *string `yaml:"scopeSchema" json:"scopeSchema"`
	ScopeTable        *string `yaml:"scopeTable" json:"scopeTable"`
	SourceDataType    *int16  `yaml:"sourceDataType" json:"sourceDataType"`
	IsAutoincrement   string  `yaml:"isAutoincrement" json:"isAutoincrement"`
	IsGeneratedcolumn string  `yaml:"isGeneratedcolumn" json:"isGeneratedcolumn"`
}

// ColumnDescriptor binds getColumns rows.
var ColumnDescriptor = bind.Extends(bind.NewType[Column]("column",
	bind.String("columnName", "COLUMN_NAME", func(c *Column) *string { return &c.ColumnName }),
	bind.Int32("dataType", "DATA_TYPE", func(c *Column) *int32 { return &c.DataType }),
	bind.String("typeName", "TYPE_NAME", func(c *Column) *string { return &c.TypeName }),
	bind.NullInt32("columnSize", "COLUMN_SIZE", func(c *Column) **int32 { return &c.ColumnSize }),
	bind.NullInt32("bufferLength", "BUFFER_LENGTH", func(c *Column) **int32 { return &c.BufferLength }),
	bind.NullInt32("decimalDigits", "DECIMAL_DIGITS", func(c *Column) **int32 { return &c.DecimalDigits }),
	bind.NullInt32("numPrecRadix", "NUM_PREC_RADIX", func(c *Column) **int32 { return &c.NumPrecRadix }),
	bind.Int32("nullable", "NULLABLE", func(c *Column) *int32 { return &c.Nullable }),
	bind.NullString("remarks", "REMARKS", func(c *Column) **string { return &c.Remarks }),
	bind.NullString("columnDef", "COLUMN_DEF", func(c *Column) **string { return &c.ColumnDef }),
	bind.NullInt32("sqlDataType", "SQL_DATA_TYPE", func(c *Column) **int32 { return &c.SQLDataType }),
	bind.NullInt32("sqlDatetimeSub", "SQL_DATETIME_SUB", func(c *Column) **int32 { return &c.SQLDatetimeSub }),
	bind.NullInt32("charOctetLength", "CHAR_OCTET_LENGTH", func(c *Column) **int32 { return &c.CharOctetLength }),
	bind.Int32("ordinalPosition", "ORDINAL_POSITION", func(c *Column) *int32 { return &c.OrdinalPosition }),
	bind.String("isNullable", "IS_NULLABLE", func(c *Column) *string { return &c.IsNullable }),
	bind.NullString("scopeCatalog", "SCOPE_CATALOG", func(c *Column) **string { return &c.ScopeCatalog }),
	bind.NullString("scopeSchema", "SCOPE_SCHEMA", func(c *Column) **string { return &c.ScopeSchema }),
	bind.NullString("scopeTable", "SCOPE_TABLE", func(c *Column) **string { return &c.ScopeTable }),
	bind.NullInt16("sourceDataType", "SOURCE_DATA_TYPE", func(c *Column) **int16 { return &c.SourceDataType }),
	bind.String("isAutoincrement", "IS_AUTOINCREMENT", func(c *Column) *string { return &c.IsAutoincrement }),
	bind.String("isGeneratedcolumn", "IS_GENERATEDCOLUMN", func(c *Column) *string { return &c.IsGeneratedcolumn }),
), TableChildDescriptor, func(c *Column) *TableChild { return &c.TableChild })

// ColumnPrivilege is one getColumnPrivileges row.
type ColumnPrivilege struct {
	node        `yaml:"-" json:"-"`
	TableChild  `yaml:",inline"`
	ColumnName  string  `yaml:"columnName" json:"columnName"`
	Grantor     *string `yaml:"grantor" json:"grantor"`
	Grantee     string  `yaml:"grantee" json:"grantee"`
	Privilege   string  `yaml:"privilege" json:"privilege"`
	IsGrantable *string `yaml:"isGrantable" json:"isGrantable"`
}

// ColumnPrivilegeDescriptor binds getColumnPrivileges rows.
var ColumnPrivilegeDescriptor = bind.Extends(bind.NewType[ColumnPrivilege]("columnPrivilege",
	bind.String("columnName", "COLUMN_NAME", func(p *ColumnPrivilege) *string { return &p.ColumnName }),
	bind.NullString("grantor", "GRANTOR", func(p *ColumnPrivilege) **string { return &p.Grantor }),
	bind.String("grantee", "GRANTEE", func(p *ColumnPrivilege) *string { return &p.Grantee }),
	bind.String("privilege", "PRIVILEGE", func(p *ColumnPrivilege) *string { return &p.Privilege }),
	bind.NullString("isGrantable", "IS_GRANTABLE", func(p *ColumnPrivilege) **string { return &p.IsGrantable }),
), TableChildDescriptor, func(p *ColumnPrivilege) *TableChild { return &p.TableChild })

// TablePrivilege is one getTablePrivileges row.
type TablePrivilege struct {
	node        `yaml:"-" json:"-"`
	TableChild  `yaml:",inline"`
	Grantor     *string `yaml:"grantor" json:"grantor"`
	Grantee     string  `yaml:"grantee" json:"grantee"`
	Privilege   string  `yaml:"privilege" json:"privilege"`
	IsGrantable *string `yaml:"isGrantable" json:"isGrantable"`
}

// TablePrivilegeDescriptor binds getTablePrivileges rows.
var TablePrivilegeDescriptor = bind.Extends(bind.NewType[TablePrivilege]("tablePrivilege",
	bind.NullString("grantor", "GRANTOR", func(p *TablePrivilege) **string { return &p.Grantor }),
	bind.String("grantee", "GRANTEE", func(p *TablePrivilege) *string { return &p.Grantee }),
	bind.String("privilege", "PRIVILEGE", func(p *TablePrivilege) *string { return &p.Privilege }),
	bind.NullString("isGrantable", "IS_GRANTABLE", func(p *TablePrivilege) **string { return &p.IsGrantable }),
), TableChildDescriptor, func(p *TablePrivilege) *TableChild { return &p.TableChild })

// PrimaryKey is one getPrimaryKeys row.
type PrimaryKey struct {
	node       `yaml:"-" json:"-"`
	TableChild `yaml:",inline"`
	ColumnName string  `yaml:"columnName" json:"columnName"`
	KeySeq     int16   `yaml:"keySeq" json:"keySeq"`
	PkName     *string `yaml:"pkName" json:"pkName"`
}

// PrimaryKeyDescriptor binds getPrimaryKeys rows.
var PrimaryKeyDescriptor = bind.Extends(bind.NewType[PrimaryKey]("primaryKey",
	bind.String("columnName", "COLUMN_NAME", func(k *PrimaryKey) *string { return &k.ColumnName }),
	bind.Int16("keySeq", "KEY_SEQ", func(k *PrimaryKey) *int16 { return &k.KeySeq }),
	bind.NullString("pkName", "PK_NAME", func(k *PrimaryKey) **string { return &k.PkName }),
), TableChildDescriptor, func(k *PrimaryKey) *TableChild { return &k.TableChild })

// IndexInfo is one getIndexInfo row: one column of one index.
type IndexInfo struct {
	node            `yaml:"-" json:"-"`
	TableChild      `yaml:",inline"`
	NonUnique       bool    `yaml:"nonUnique" json:"nonUnique"`
	IndexQualifier  *string `yaml:"indexQualifier" json:"indexQualifier"`
	IndexName       *string `yaml:"indexName" json:"indexName"`
	Type            int16   `yaml:"type" json:"type"`
	OrdinalPosition int16   `yaml:"ordinalPosition" json:"ordinalPosition"`
	ColumnName      *string `yaml:"columnName" json:"columnName"`
	AscOrDesc       *string `yaml:"ascOrDesc" json:"ascOrDesc"`
	Cardinality     int64   `yaml:"cardinality" json:"cardinality"`
	Pages           int64   `yaml:"pages" json:"pages"`
	FilterCondition *string `yaml:"filterCondition" json:"filterCondition"`
}

// IndexInfoDescriptor binds getIndexInfo rows.
var IndexInfoDescriptor = bind.Extends(bind.NewType[IndexInfo]("indexInfo",
	bind.Bool("nonUnique", "NON_UNIQUE", func(i *IndexInfo) *bool { return &i.NonUnique }),
	bind.NullString("indexQualifier", "INDEX_QUALIFIER", func(i *IndexInfo) **string { return &i.IndexQualifier }),
	bind.NullString("indexName", "INDEX_NAME", func(i *IndexInfo) **string { return &i.IndexName }),
	bind.Int16("type", "TYPE", func(i *IndexInfo) *int16 { return &i.Type }),
	bind.Int16("ordinalPosition", "ORDINAL_POSITION", func(i *IndexInfo) *int16 { return &i.OrdinalPosition }),
	bind.NullString("columnName", "COLUMN_NAME", func(i *IndexInfo) **string { return &i.ColumnName }),
	bind.NullString("ascOrDesc", "ASC_OR_DESC", func(i *IndexInfo) **string { return &i.AscOrDesc }),
	bind.Int64("cardinality", "CARDINALITY", func(i *IndexInfo) *int64 { return &i.Cardinality }),
	bind.Int64("pages", "PAGES", func(i *IndexInfo) *int64 { return &i.Pages }),
	bind.NullString("filterCondition", "FILTER_CONDITION", func(i *IndexInfo) **string { return &i.FilterCondition }),
), TableChildDescriptor, func(i *IndexInfo) *TableChild { return &i.TableChild })

// BestRowIdentifier is one getBestRowIdentifier row.
type BestRowIdentifier struct {
	node          `yaml:"-" json:"-"`
	Scope         int16  `yaml:"scope" json:"scope"`
	ColumnName    string `yaml:"columnName" json:"columnName"`
	DataType      int32  `yaml:"dataType" json:"dataType"`
	TypeName      string `yaml:"typeName" json:"typeName"`
	ColumnSize    *int32 `yaml:"columnSize" json:"columnSize"`
	BufferLength  *int32 `yaml:"bufferLength" json:"bufferLength"`
	DecimalDigits *int16 `yaml:"decimalDigits" json:"decimalDigits"`
	PseudoColumn  int16  `yaml:"pseudoColumn" json:"pseudoColumn"`
}

// BestRowIdentifierDescriptor binds getBestRowIdentifier rows.
var BestRowIdentifierDescriptor = bind.NewType[BestRowIdentifier]("bestRowIdentifier",
	bind.Int16("scope", "SCOPE", func(b *BestRowIdentifier) *int16 { return &b.Scope }),
	bind.String("columnName", "COLUMN_NAME", func(b *BestRowIdentifier) *string { return &b.ColumnName }),
	bind.Int32("dataType", "DATA_TYPE", func(b *BestRowIdentifier) *int32 { return &b.DataType }),
	bind.String("typeName", "TYPE_NAME", func(b *BestRowIdentifier) *string { return &b.TypeName }),
	bind.NullInt32("columnSize", "COLUMN_SIZE", func(b *BestRowIdentifier) **int32 { return &b.ColumnSize }),
	bind.NullInt32("bufferLength", "BUFFER_LENGTH", func(b *BestRowIdentifier) **int32 { return &b.BufferLength }),
	bind.NullInt16("decimalDigits", "DECIMAL_DIGITS", func(b *BestRowIdentifier) **int16 { return &b.DecimalDigits }),
	bind.Int16("pseudoColumn", "PSEUDO_COLUMN", func(b *BestRowIdentifier) *int16 { return &b.PseudoColumn }),
)

// VersionColumn is one getVersionColumns row.
type VersionColumn struct {
	node          `yaml:"-" json:"-"`
	Scope         *int16 `yaml:"scope" json:"scope"`
	ColumnName    string `yaml:"columnName" json:"columnName"`
	DataType      int32  `yaml:"dataType" json:"dataType"`
	TypeName      string `yaml:"typeName" json:"typeName"`
	ColumnSize    *int32 `yaml:"columnSize" json:"columnSize"`
	BufferLength  *int32 `yaml:"bufferLength" json:"bufferLength"`
	DecimalDigits *int16 `yaml:"decimalDigits" json:"decimalDigits"`
	PseudoColumn  int16  `yaml:"pseudoColumn" json:"pseudoColumn"`
}

// VersionColumnDescriptor binds getVersionColumns rows.
var VersionColumnDescriptor = bind.NewType[VersionColumn]("versionColumn",
	bind.NullInt16("scope", "SCOPE", func(v *VersionColumn) **int16 { return &v.Scope }),
	bind.String("columnName", "COLUMN_NAME", func(v *VersionColumn) *string { return &v.ColumnName }),
	bind.Int32("dataType", "DATA_TYPE", func(v *VersionColumn) *int32 { return &v.DataType }),
	bind.String("typeName", "TYPE_NAME", func(v *VersionColumn) *string { return &v.TypeName }),
	bind.NullInt32("columnSize", "COLUMN_SIZE", func(v *VersionColumn) **int32 { return &v.ColumnSize }),
	bind.NullInt32("bufferLength", "BUFFER_LENGTH", func(v *VersionColumn) **int32 { return &v.BufferLength }),
	bind.NullInt16("decimalDigits", "DECIMAL_DIGITS", func(v *VersionColumn) **int16 { return &v.DecimalDigits }),
	bind.Int16("pseudoColumn", "PSEUDO_COLUMN", func(v *VersionColumn) *int16 { return &v.PseudoColumn }),
)

// PseudoColumn is one getPseudoColumns row.
type PseudoColumn struct {
	node            `yaml:"-" json:"-"`
	TableChild      `yaml:",inline"`
	ColumnName      string  `yaml:"columnName" json:"columnName"`
	DataType        int32   `yaml:"dataType" json:"dataType"`
	ColumnSize      *int32  `yaml:"columnSize" json:"columnSize"`
	DecimalDigits   *int32  `yaml:"decimalDigits" json:"decimalDigits"`
	NumPrecRadix    *int32  `yaml:"numPrecRadix" json:"numPrecRadix"`
	ColumnUsage     string  `yaml:"columnUsage" json:"columnUsage"`
	Remarks         *string `yaml:"remarks" json:"remarks"`
	CharOctetLength *int32  `yaml:"charOctetLength" json:"charOctetLength"`
	IsNullable      string  `yaml:"isNullable" json:"isNullable"`
}

// PseudoColumnDescriptor binds getPseudoColumns rows.
var PseudoColumnDescriptor = bind.Extends(bind.NewType[PseudoColumn]("pseudoColumn",
	bind.String("columnName", "COLUMN_NAME", func(p *PseudoColumn) *string { return &p.ColumnName }),
	bind.Int32("dataType", "DATA_TYPE", func(p *PseudoColumn) *int32 { return &p.DataType }),
	bind.NullInt32("columnSize", "COLUMN_SIZE", func(p *PseudoColumn) **int32 { return &p.ColumnSize }),
	bind.NullInt32("decimalDigits", "DECIMAL_DIGITS", func(p *PseudoColumn) **int32 { return &p.DecimalDigits }),
	bind.NullInt32("numPrecRadix", "NUM_PREC_RADIX", func(p *PseudoColumn) **int32 { return &p.NumPrecRadix }),
	bind.String("columnUsage", "COLUMN_USAGE", func(p *PseudoColumn) *string { return &p.ColumnUsage }),
	bind.NullString("remarks", "REMARKS", func(p *PseudoColumn) **string { return &p.Remarks }),
	bind.NullInt32("charOctetLength", "CHAR_OCTET_LENGTH", func(p *PseudoColumn) **int32 { return &p.CharOctetLength }),
	bind.String("isNullable", "IS_NULLABLE", func(p *PseudoColumn) *string { return &p.IsNullable }),
), TableChildDescriptor, func(p *PseudoColumn) *TableChild { return &p.TableChild })

// SuperTable is one getSuperTables row.
type SuperTable struct {
	node           `yaml:"-" json:"-"`
	TableChild     `yaml:",inline"`
	SupertableName string `yaml:"supertableName" json:"supertableName"`
}

// SuperTableDescriptor binds getSuperTables rows.
var SuperTableDescriptor = bind.Extends(bind.NewType[SuperTable]("superTable",
	bind.String("supertableName", "SUPERTABLE_NAME", func(s *SuperTable) *string { return &s.SupertableName }),
), TableChildDescriptor, func(s *SuperTable) *TableChild { return &s.TableChild })
