package meta

import (
	"github.com/dbsmedya/dbmeta/internal/bind"
)

// Procedure is one getProcedures row.
type Procedure struct {
	node             `yaml:"-" json:"-"`
	ProcedureCat     *string            `yaml:"procedureCat" json:"procedureCat"`
	ProcedureSchem   *string            `yaml:"procedureSchem" json:"procedureSchem"`
	ProcedureName    string             `yaml:"procedureName" json:"procedureName"`
	Remarks          *string            `yaml:"remarks" json:"remarks"`
	ProcedureType    int16              `yaml:"procedureType" json:"procedureType"`
	SpecificName     string             `yaml:"specificName" json:"specificName"`
	ProcedureColumns []*ProcedureColumn `yaml:"procedureColumns,omitempty" json:"procedureColumns,omitempty"`
}

// Key implements bind.Keyed. Overloads differ by specific name.
func (p *Procedure) Key() string {
	return key(str(p.ProcedureCat), str(p.ProcedureSchem), p.SpecificName)
}

// ProcedureColumn is one getProcedureColumns row.
type ProcedureColumn struct {
	node            `yaml:"-" json:"-"`
	ProcedureCat    *string `yaml:"procedureCat" json:"procedureCat"`
	ProcedureSchem  *string `yaml:"procedureSchem" json:"procedureSchem"`
	ProcedureName   string  `yaml:"procedureName" json:"procedureName"`
	ColumnName      string  `yaml:"columnName" json:"columnName"`
	ColumnType      int16   `yaml:"columnType" json:"columnType"`
	DataType        int32   `yaml:"dataType" json:"dataType"`
	TypeName        string  `yaml:"typeName" json:"typeName"`
	Precision       *int32  `yaml:"precision" json:"precision"`
	Length          *int32  `yaml:"length" json:"length"`
	Scale           *int16  `yaml:"scale" json:"scale"`
	Radix           *int16  `yaml:"radix" json:"radix"`
	Nullable        int16   `yaml:"nullable" json:"nullable"`
	Remarks         *string `yaml:"remarks" json:"remarks"`
	ColumnDef       *string `yaml:"columnDef" json:"columnDef"`
	SQLDataType     *int32  `yaml:"sqlDataType" json:"sqlDataType"`
	SQLDatetimeSub  *int32  `yaml:"sqlDatetimeSub" json:"sqlDatetimeSub"`
	CharOctetLength *int32  `yaml:"charOctetLength" json:"charOctetLength"`
	OrdinalPosition int32   `yaml:"ordinalPosition" json:"ordinalPosition"`
	IsNullable      string  `yaml:"isNullable" json:"isNullable"`
	SpecificName    string  `yaml:"specificName" json:"specificName"`
}

// ProcedureDescriptor binds getProcedures rows.
var ProcedureDescriptor = bind.NewType[Procedure]("procedure",
	bind.NullString("procedureCat", "PROCEDURE_CAT", func(p *Procedure) **string { return &p.ProcedureCat }),
	bind.NullString("procedureSchem", "PROCEDURE_SCHEM", func(p *Procedure) **string { return &p.ProcedureSchem }),
	bind.String("procedureName", "PROCEDURE_NAME", func(p *Procedure) *string { return &p.ProcedureName }),
	bind.NullString("remarks", "REMARKS", func(p *Procedure) **string { return &p.Remarks }),
	bind.Int16("procedureType", "PROCEDURE_TYPE", func(p *Procedure) *int16 { return &p.ProcedureType }),
	bind.String("specificName", "SPECIFIC_NAME", func(p *Procedure) *string { return &p.SpecificName }),
	bind.Rows("procedureColumns", ProcedureColumnDescriptor, func(p *Procedure) *[]*ProcedureColumn { return &p.ProcedureColumns },
		bind.Invoke(OpGetProcedureColumns, bind.KindNullString, bind.KindNullString, bind.KindString, bind.KindNullString).
			With(
				bind.Back("procedureCat", func(p *Procedure) any { return p.ProcedureCat }),
				bind.Back("procedureSchem", func(p *Procedure) any { return p.ProcedureSchem }),
				bind.Back("procedureName", func(p *Procedure) any { return p.ProcedureName }),
				bind.Literal("%"),
			)),
)

// ProcedureColumnDescriptor binds getProcedureColumns rows.
var ProcedureColumnDescriptor = bind.NewType[ProcedureColumn]("procedureColumn",
	bind.NullString("procedureCat", "PROCEDURE_CAT", func(c *ProcedureColumn) **string { return &c.ProcedureCat }),
	bind.NullString("procedureSchem", "PROCEDURE_SCHEM", func(c *ProcedureColumn) **string { return &c.ProcedureSchem }),
	bind.String("procedureName", "PROCEDURE_NAME", func(c *ProcedureColumn) *string { return &c.ProcedureName }),
	bind.String("columnName", "COLUMN_NAME", func(c *ProcedureColumn) *string { return &c.ColumnName }),
	bind.Int16("columnType", "COLUMN_TYPE", func(c *ProcedureColumn) *int16 { return &c.ColumnType }),
	bind.Int32("dataType", "DATA_TYPE", func(c *ProcedureColumn) *int32 { return &c.DataType }),
	bind.String("typeName", "TYPE_NAME", func(c *ProcedureColumn) *string { return &c.TypeName }),
	bind.NullInt32("precision", "PRECISION", func(c *ProcedureColumn) **int32 { return &c.Precision }),
	bind.NullInt32("length", "LENGTH", func(c *ProcedureColumn) **int32 { return &c.Length }),
	bind.NullInt16("scale", "SCALE", func(c *ProcedureColumn) **int16 { return &c.Scale }),
	bind.NullInt16("radix", "RADIX", func(c *ProcedureColumn) **int16 { return &c.Radix }),
	bind.Int16("nullable", "NULLABLE", func(c *ProcedureColumn) *int16 { return &c.Nullable }),
	bind.NullString("remarks", "REMARKS", func(c *ProcedureColumn) **string { return &c.Remarks }),
	bind.NullString("columnDef", "COLUMN_DEF", func(c *ProcedureColumn) **string { return &c.ColumnDef }),
	bind.NullInt32("sqlDataType", "SQL_DATA_TYPE", func(c *ProcedureColumn) **int32 { return &c.SQLDataType }),
	bind.NullInt32("sqlDatetimeSub", "SQL_DATETIME_SUB", func(c *ProcedureColumn) **int32 { return &c.SQLDatetimeSub }),
	bind.NullInt32("charOctetLength", "CHAR_OCTET_LENGTH", func(c *ProcedureColumn) **int32 { return &c.CharOctetLength }),
	bind.Int32("ordinalPosition", "ORDINAL_POSITION", func(c *ProcedureColumn) *int32 { return &c.OrdinalPosition }),
	bind.String("isNullable", "IS_NULLABLE", func(c *ProcedureColumn) *string { return &c.IsNullable }),
	bind.String("specificName", "SPECIFIC_NAME", func(c *ProcedureColumn) *string { return &c.SpecificName }),
)

// Function is one getFunctions row.
type Function struct {
	node            `yaml:"-" json:"-"`
	FunctionCat     *string           `yaml:"functionCat" json:"functionCat"`
	FunctionSchem   *string           `yaml:"functionSchem" json:"functionSchem"`
	FunctionName    string            `yaml:"functionName" json:"functionName"`
	Remarks         *string           `yaml:"remarks" json:"remarks"`
	FunctionType    int16             `yaml:"functionType" json:"functionType"`
	SpecificName    string            `yaml:"specificName" json:"specificName"`
	FunctionColumns []*FunctionColumn `yaml:"functionColumns,omitempty" json:"functionColumns,omitempty"`
}

// Key implements bind.Keyed.
func (f *Function) Key() string {
	return key(str(f.FunctionCat), str(f.FunctionSchem), f.SpecificName)
}

// FunctionColumn is one getFunctionColumns row.
type FunctionColumn struct {
	node            `yaml:"-" json:"-"`
	FunctionCat     *string `yaml:"functionCat" json:"functionCat"`
	FunctionSchem   *string `yaml:"functionSchem" json:"functionSchem"`
	FunctionName    string  `yaml:"functionName" json:"functionName"`
	ColumnName      string  `yaml:"columnName" json:"columnName"`
	ColumnType      int16   `yaml:"columnType" json:"columnType"`
	DataType        int32   `yaml:"dataType" json:"dataType"`
	TypeName        string  `yaml:"typeName" json:"typeName"`
	Precision       *int32  `yaml:"precision" json:"precision"`
	Length          *int32  `yaml:"length" json:"length"`
	Scale           *int16  `yaml:"scale" json:"scale"`
	Radix           *int16  `yaml:"radix" json:"radix"`
	Nullable        int16   `yaml:"nullable" json:"nullable"`
	Remarks         *string `yaml:"remarks" json:"remarks"`
	CharOctetLength *int32  `yaml:"charOctetLength" json:"charOctetLength"`
	OrdinalPosition int32   `yaml:"ordinalPosition" json:"ordinalPosition"`
	IsNullable      string  `yaml:"isNullable" json:"isNullable"`
	SpecificName    string  `yaml:"specificName" json:"specificName"`
}

// FunctionDescriptor binds getFunctions rows.
var FunctionDescriptor = bind.NewType[Function]("function",
	bind.NullString("functionCat", "FUNCTION_CAT", func(f *Function) **string { return &f.FunctionCat }),
	bind.NullString("functionSchem", "FUNCTION_SCHEM", func(f *Function) **string { return &f.FunctionSchem }),
	bind.String("functionName", "FUNCTION_NAME", func(f *Function) *string { return &f.FunctionName }),
	bind.NullString("remarks", "REMARKS", func(f *Function) **string { return &f.Remarks }),
	bind.Int16("functionType", "FUNCTION_TYPE", func(f *Function) *int16 { return &f.FunctionType }),
	bind.String("specificName", "SPECIFIC_NAME", func(f *Function) *string { return &f.SpecificName }),
	bind.Rows("functionColumns", FunctionColumnDescriptor, func(f *Function) *[]*FunctionColumn { return &f.FunctionColumns },
		bind.Invoke(OpGetFunctionColumns, bind.KindNullString, bind.KindNullString, bind.KindString, bind.KindNullString).
			With(
				bind.Back("functionCat", func(f *Function) any { return f.FunctionCat }),
				bind.Back("functionSchem", func(f *Function) any { return f.FunctionSchem }),
				bind.Back("functionName", func(f *Function) any { return f.FunctionName }),
				bind.Literal("%"),
			)),
)

// FunctionColumnDescriptor binds getFunctionColumns rows.
var FunctionColumnDescriptor = bind.NewType[FunctionColumn]("functionColumn",
	bind.NullString("functionCat", "FUNCTION_CAT", func(c *FunctionColumn) **string { return &c.FunctionCat }),
	bind.NullString("functionSchem", "FUNCTION_SCHEM", func(c *FunctionColumn) **string { return &c.FunctionSchem }),
	bind.String("functionName", "FUNCTION_NAME", func(c *FunctionColumn) *string { return &c.FunctionName }),
	bind.String("columnName", "COLUMN_NAME", func(c *FunctionColumn) *string { return &c.ColumnName }),
	bind.Int16("columnType", "COLUMN_TYPE", func(c *FunctionColumn) *int16 { return &c.ColumnType }),
	bind.Int32("dataType", "DATA_TYPE", func(c *FunctionColumn) *int32 { return &c.DataType }),
	bind.String("typeName", "TYPE_NAME", func(c *FunctionColumn) *string { return &c.TypeName }),
	bind.NullInt32("precision", "PRECISION", func(c *FunctionColumn) **int32 { return &c.Precision }),
	bind.NullInt32("length", "LENGTH", func(c *FunctionColumn) **int32 { return &c.Length }),
	bind.NullInt16("scale", "SCALE", func(c *FunctionColumn) **int16 { return &c.Scale }),
	bind.NullInt16("radix", "RADIX", func(c *FunctionColumn) **int16 { return &c.Radix }),
	bind.Int16("nullable", "NULLABLE", func(c *FunctionColumn) *int16 { return &c.Nullable }),
	bind.NullString("remarks", "REMARKS", func(c *FunctionColumn) **string { return &c.Remarks }),
	bind.NullInt32("charOctetLength", "CHAR_OCTET_LENGTH", func(c *FunctionColumn) **int32 { return &c.CharOctetLength }),
	bind.Int32("ordinalPosition", "ORDINAL_POSITION", func(c *FunctionColumn) *int32 { return &c.OrdinalPosition }),
	bind.String("isNullable", "IS_NULLABLE", func(c *FunctionColumn) *string { return &c.IsNullable }),
	bind.String("specificName", "SPECIFIC_NAME", func(c *FunctionColumn) *string { return &c.SpecificName }),
)
