package meta

import (
	"github.com/dbsmedya/dbmeta/internal/bind"
)

// UDT is one getUDTs row.
type UDT struct {
	node       `yaml:"-" json:"-"`
	TypeCat    *string      `yaml:"typeCat" json:"typeCat"`
	TypeSchem  *string      `yaml:"typeSchem" json:"typeSchem"`
	TypeName   string       `yaml:"typeName" json:"typeName"`
	ClassName  string       `yaml:"className" json:"className"`
	DataType   int32        `yaml:"dataType" json:"dataType"`
	Remarks    *string      `yaml:"remarks" json:"remarks"`
	BaseType   *int16       `yaml:"baseType" json:"baseType"`
	Attributes []*Attribute `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	SuperTypes []*SuperType `yaml:"superTypes,omitempty" json:"superTypes,omitempty"`
}

// Key implements bind.Keyed.
func (u *UDT) Key() string {
	return key(str(u.TypeCat), str(u.TypeSchem), u.TypeName)
}

// Attribute is one getAttributes row.
type Attribute struct {
	node            `yaml:"-" json:"-"`
	TypeCat         *string `yaml:"typeCat" json:"typeCat"`
	TypeSchem       *string `yaml:"typeSchem" json:"typeSchem"`
	TypeName        string  `yaml:"typeName" json:"typeName"`
	AttrName        string  `yaml:"attrName" json:"attrName"`
	DataType        int32   `yaml:"dataType" json:"dataType"`
	AttrTypeName    string  `yaml:"attrTypeName" json:"attrTypeName"`
	AttrSize        int32   `yaml:"attrSize" json:"attrSize"`
	DecimalDigits   *int32  `yaml:"decimalDigits" json:"decimalDigits"`
	NumPrecRadix    int32   `yaml:"numPrecRadix" json:"numPrecRadix"`
	Nullable        int32   `yaml:"nullable" json:"nullable"`
	Remarks         *string `yaml:"remarks" json:"remarks"`
	AttrDef         *string `yaml:"attrDef" json:"attrDef"`
	SQLDataType     *int32  `yaml:"sqlDataType" json:"sqlDataType"`
	SQLDatetimeSub  *int32  `yaml:"sqlDatetimeSub" json:"sqlDatetimeSub"`
	CharOctetLength int32   `yaml:"charOctetLength" json:"charOctetLength"`
	OrdinalPosition int32   `yaml:"ordinalPosition" json:"ordinalPosition"`
	IsNullable      string  `yaml:"isNullable" json:"isNullable"`
	SourceDataType  *int16  `yaml:"sourceDataType" json:"sourceDataType"`
}

// SuperType is one getSuperTypes row.
type SuperType struct {
	node           `yaml:"-" json:"-"`
	TypeCat        *string `yaml:"typeCat" json:"typeCat"`
	TypeSchem      *string `yaml:"typeSchem" json:"typeSchem"`
	TypeName       string  `yaml:"typeName" json:"typeName"`
	SupertypeCat   *string `yaml:"supertypeCat" json:"supertypeCat"`
	SupertypeSchem *string `yaml:"supertypeSchem" json:"supertypeSchem"`
	SupertypeName  string  `yaml:"supertypeName" json:"supertypeName"`
}

var (
	udtCatRef   = bind.Back("typeCat", func(u *UDT) any { return u.TypeCat })
	udtSchemRef = bind.Back("typeSchem", func(u *UDT) any { return u.TypeSchem })
	udtNameRef  = bind.Back("typeName", func(u *UDT) any { return u.TypeName })
)

// UDTDescriptor binds getUDTs rows.
var UDTDescriptor = bind.NewType[UDT]("udt",
	bind.NullString("typeCat", "TYPE_CAT", func(u *UDT) **string { return &u.TypeCat }),
	bind.NullString("typeSchem", "TYPE_SCHEM", func(u *UDT) **string { return &u.TypeSchem }),
	bind.String("typeName", "TYPE_NAME", func(u *UDT) *string { return &u.TypeName }),
	bind.String("className", "CLASS_NAME", func(u *UDT) *string { return &u.ClassName }),
	bind.Int32("dataType", "DATA_TYPE", func(u *UDT) *int32 { return &u.DataType }),
	bind.NullString("remarks", "REMARKS", func(u *UDT) **string { return &u.Remarks }),
	bind.NullInt16("baseType", "BASE_TYPE", func(u *UDT) **int16 { return &u.BaseType }),
	bind.Rows("attributes", AttributeDescriptor, func(u *UDT) *[]*Attribute { return &u.Attributes },
		bind.Invoke(OpGetAttributes, bind.KindNullString, bind.KindNullString, bind.KindString, bind.KindNullString).
			With(udtCatRef, udtSchemRef, udtNameRef, bind.Null())),
	bind.Rows("superTypes", SuperTypeDescriptor, func(u *UDT) *[]*SuperType { return &u.SuperTypes },
		bind.Invoke(OpGetSuperTypes, bind.KindNullString, bind.KindNullString, bind.KindString).
			With(udtCatRef, udtSchemRef, udtNameRef)),
)

// AttributeDescriptor binds getAttributes rows.
var AttributeDescriptor = bind.NewType[Attribute]("attribute",
	bind.NullString("typeCat", "TYPE_CAT", func(a *Attribute) **string { return &a.TypeCat }),
	bind.NullString("typeSchem", "TYPE_SCHEM", func(a *Attribute) **string { return &a.TypeSchem }),
	bind.String("typeName", "TYPE_NAME", func(a *Attribute) *string { return &a.TypeName }),
	bind.String("attrName", "ATTR_NAME", func(a *Attribute) *string { return &a.AttrName }),
	bind.Int32("dataType", "DATA_TYPE", func(a *Attribute) *int32 { return &a.DataType }),
	bind.String("attrTypeName", "ATTR_TYPE_NAME", func(a *Attribute) *string { return &a.AttrTypeName }),
	bind.Int32("attrSize", "ATTR_SIZE", func(a *Attribute) *int32 { return &a.AttrSize }),
	bind.NullInt32("decimalDigits", "DECIMAL_DIGITS", func(a *Attribute) **int32 { return &a.DecimalDigits }),
	bind.Int32("numPrecRadix", "NUM_PREC_RADIX", func(a *Attribute) *int32 { return &a.NumPrecRadix }),
	bind.Int32("nullable", "NULLABLE", func(a *Attribute) *int32 { return &a.Nullable }),
	bind.NullString("remarks", "REMARKS", func(a *Attribute) **string { return &a.Remarks }),
	bind.NullString("attrDef", "ATTR_DEF", func(a *Attribute) **string { return &a.AttrDef }),
	bind.NullInt32("sqlDataType", "SQL_DATA_TYPE", func(a *Attribute) **int32 { return &a.SQLDataType }),
	bind.NullInt32("sqlDatetimeSub", "SQL_DATETIME_SUB", func(a *Attribute) **int32 { return &a.SQLDatetimeSub }),
	bind.Int32("charOctetLength", "CHAR_OCTET_LENGTH", func(a *Attribute) *int32 { return &a.CharOctetLength }),
	bind.Int32("ordinalPosition", "ORDINAL_POSITION", func(a *Attribute) *int32 { return &a.OrdinalPosition }),
	bind.String("isNullable", "IS_NULLABLE", func(a *Attribute) *string { return &a.IsNullable }),
	bind.NullInt16("sourceDataType", "SOURCE_DATA_TYPE", func(a *Attribute) **int16 { return &a.SourceDataType }),
)

// SuperTypeDescriptor binds getSuperTypes rows.
var SuperTypeDescriptor = bind.NewType[SuperType]("superType",
	bind.NullString("typeCat", "TYPE_CAT", func(s *SuperType) **string { return &s.TypeCat }),
	bind.NullString("typeSchem", "TYPE_SCHEM", func(s *SuperType) **string { return &s.TypeSchem }),
	bind.String("typeName", "TYPE_NAME", func(s *SuperType) *string { return &s.TypeName }),
	bind.NullString("supertypeCat", "SUPERTYPE_CAT", func(s *SuperType) **string { return &s.SupertypeCat }),
	bind.NullString("supertypeSchem", "SUPERTYPE_SCHEM", func(s *SuperType) **string { return &s.SupertypeSchem }),
	bind.String("supertypeName", "SUPERTYPE_NAME", func(s *SuperType) *string { return &s.SupertypeName }),
)

// TableType is one getTableTypes row.
type TableType struct {
	node      `yaml:"-" json:"-"`
	TableType string `yaml:"tableType" json:"tableType"`
}

// Key implements bind.Keyed.
func (t *TableType) Key() string {
	return t.TableType
}

// TableTypeDescriptor binds getTableTypes rows.
var TableTypeDescriptor = bind.NewType[TableType]("tableType",
	bind.String("tableType", "TABLE_TYPE", func(t *TableType) *string { return &t.TableType }),
)

// TypeInfo is one getTypeInfo row.
type TypeInfo struct {
	node              `yaml:"-" json:"-"`
	TypeName          string  `yaml:"typeName" json:"typeName"`
	DataType          int32   `yaml:"dataType" json:"dataType"`
	Precision         int32   `yaml:"precision" json:"precision"`
	LiteralPrefix     *string `yaml:"literalPrefix" json:"literalPrefix"`
	LiteralSuffix     *string `yaml:"literalSuffix" json:"literalSuffix"`
	CreateParams      *string `yaml:"createParams" json:"createParams"`
	Nullable          int16   `yaml:"nullable" json:"nullable"`
	CaseSensitive     bool    `yaml:"caseSensitive" json:"caseSensitive"`
	Searchable        int16   `yaml:"searchable" json:"searchable"`
	UnsignedAttribute bool    `yaml:"unsignedAttribute" json:"unsignedAttribute"`
	FixedPrecScale    bool    `yaml:"fixedPrecScale" json:"fixedPrecScale"`
	AutoIncrement     bool    `yaml:"autoIncrement" json:"autoIncrement"`
	LocalTypeName     *string `yaml:"localTypeName" json:"localTypeName"`
	MinimumScale      int16   `yaml:"minimumScale" json:"minimumScale"`
	MaximumScale      int16   `yaml:"maximumScale" json:"maximumScale"`
	SQLDataType       *int32  `yaml:"sqlDataType" json:"sqlDataType"`
	SQLDatetimeSub    *int32  `yaml:"sqlDatetimeSub" json:"sqlDatetimeSub"`
	NumPrecRadix      int32   `yaml:"numPrecRadix" json:"numPrecRadix"`
}

// Key implements bind.Keyed.
func (t *TypeInfo) Key() string {
	return t.TypeName
}

// TypeInfoDescriptor binds getTypeInfo rows.
var TypeInfoDescriptor = bind.NewType[TypeInfo]("typeInfo",
	bind.String("typeName", "TYPE_NAME", func(t *TypeInfo) *string { return &t.TypeName }),
	bind.Int32("dataType", "DATA_TYPE", func(t *TypeInfo) *int32 { return &t.DataType }),
	bind.Int32("precision", "PRECISION", func(t *TypeInfo) *int32 { return &t.Precision }),
	bind.NullString("literalPrefix", "LITERAL_PREFIX", func(t *TypeInfo) **string { return &t.LiteralPrefix }),
	bind.NullString("literalSuffix", "LITERAL_SUFFIX", func(t *TypeInfo) **string { return &t.LiteralSuffix }),
	bind.NullString("createParams", "CREATE_PARAMS", func(t *TypeInfo) **string { return &t.CreateParams }),
	bind.Int16("nullable", "NULLABLE", func(t *TypeInfo) *int16 { return &t.Nullable }),
	bind.Bool("caseSensitive", "CASE_SENSITIVE", func(t *TypeInfo) *bool { return &t.CaseSensitive }),
	bind.Int16("searchable", "SEARCHABLE", func(t *TypeInfo) *int16 { return &t.Searchable }),
	bind.Bool("unsignedAttribute", "UNSIGNED_ATTRIBUTE", func(t *TypeInfo) *bool { return &t.UnsignedAttribute }),
	bind.Bool("fixedPrecScale", "FIXED_PREC_SCALE", func(t *TypeInfo) *bool { return &t.FixedPrecScale }),
	bind.Bool("autoIncrement", "AUTO_INCREMENT", func(t *TypeInfo) *bool { return &t.AutoIncrement }),
	bind.NullString("localTypeName", "LOCAL_TYPE_NAME", func(t *TypeInfo) **string { return &t.LocalTypeName }),
	bind.Int16("minimumScale", "MINIMUM_SCALE", func(t *TypeInfo) *int16 { return &t.MinimumScale }),
	bind.Int16("maximumScale", "MAXIMUM_SCALE", func(t *TypeInfo) *int16 { return &t.MaximumScale }),
	bind.NullInt32("sqlDataType", "SQL_DATA_TYPE", func(t *TypeInfo) **int32 { return &t.SQLDataType }),
	bind.NullInt32("sqlDatetimeSub", "SQL_DATETIME_SUB", func(t *TypeInfo) **int32 { return &t.SQLDatetimeSub }),
	bind.Int32("numPrecRadix", "NUM_PREC_RADIX", func(t *TypeInfo) *int32 { return &t.NumPrecRadix }),
)

// ClientInfoProperty is one getClientInfoProperties row.
type ClientInfoProperty struct {
	node         `yaml:"-" json:"-"`
	Name         string  `yaml:"name" json:"name"`
	MaxLen       int32   `yaml:"maxLen" json:"maxLen"`
	DefaultValue *string `yaml:"defaultValue" json:"defaultValue"`
	Description  *string `yaml:"description" json:"description"`
}

// Key implements bind.Keyed.
func (c *ClientInfoProperty) Key() string {
	return c.Name
}

// ClientInfoPropertyDescriptor binds getClientInfoProperties rows.
var ClientInfoPropertyDescriptor = bind.NewType[ClientInfoProperty]("clientInfoProperty",
	bind.String("name", "NAME", func(c *ClientInfoProperty) *string { return &c.Name }),
	bind.Int32("maxLen", "MAX_LEN", func(c *ClientInfoProperty) *int32 { return &c.MaxLen }),
	bind.NullString("defaultValue", "DEFAULT_VALUE", func(c *ClientInfoProperty) **string { return &c.DefaultValue }),
	bind.NullString("description", "DESCRIPTION", func(c *ClientInfoProperty) **string { return &c.Description }),
)
