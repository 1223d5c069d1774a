package meta

import (
	"github.com/dbsmedya/dbmeta/internal/bind"
)

// Catalog is one catalog of the source. Sources without catalogs yield a
// single synthesized catalog with an empty name.
type Catalog struct {
	node     `yaml:"-" json:"-"`
	TableCat string    `yaml:"tableCat" json:"tableCat"`
	Schemas  []*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
}

// Key implements bind.Keyed.
func (c *Catalog) Key() string {
	return c.TableCat
}

// Schema is one schema of a catalog. Sources without schemas yield a single
// synthesized schema with an empty name per catalog.
type Schema struct {
	node            `yaml:"-" json:"-"`
	TableSchem      string            `yaml:"tableSchem" json:"tableSchem"`
	TableCatalog    *string           `yaml:"tableCatalog" json:"tableCatalog"`
	Tables          []*Table          `yaml:"tables,omitempty" json:"tables,omitempty"`
	Procedures      []*Procedure      `yaml:"procedures,omitempty" json:"procedures,omitempty"`
	Functions       []*Function       `yaml:"functions,omitempty" json:"functions,omitempty"`
	UDTs            []*UDT            `yaml:"udts,omitempty" json:"udts,omitempty"`
	CrossReferences []*CrossReference `yaml:"crossReferences,omitempty" json:"crossReferences,omitempty"`
}

// Key implements bind.Keyed.
func (s *Schema) Key() string {
	return key(str(s.TableCatalog), s.TableSchem)
}

// Table returns the table named name, or nil.
func (s *Schema) Table(name string) *Table {
	for _, t := range s.Tables {
		if t.TableName == name {
			return t
		}
	}
	return nil
}

var catalogRef = bind.Back("tableCat", func(c *Catalog) any { return c.TableCat })

var schemaCatalogRef = bind.Back("tableCatalog", func(s *Schema) any { return s.TableCatalog })

var schemaRef = bind.Back("tableSchem", func(s *Schema) any { return s.TableSchem })

// CatalogDescriptor binds getCatalogs rows.
var CatalogDescriptor = bind.NewType[Catalog]("catalog",
	bind.String("tableCat", "TABLE_CAT", func(c *Catalog) *string { return &c.TableCat }),
	bind.Rows("schemas", SchemaDescriptor, func(c *Catalog) *[]*Schema { return &c.Schemas },
		bind.Invoke(OpGetSchemas, bind.KindNullString, bind.KindNullString).
			With(catalogRef, bind.Null())),
)

// SchemaDescriptor binds getSchemas rows.
var SchemaDescriptor = bind.NewType[Schema]("schema",
	bind.String("tableSchem", "TABLE_SCHEM", func(s *Schema) *string { return &s.TableSchem }),
	bind.NullString("tableCatalog", "TABLE_CATALOG", func(s *Schema) **string { return &s.TableCatalog }),
	bind.Rows("tables", TableDescriptor, func(s *Schema) *[]*Table { return &s.Tables },
		bind.Invoke(OpGetTables, bind.KindNullString, bind.KindNullString, bind.KindNullString, bind.KindAny).
			With(schemaCatalogRef, schemaRef, bind.Literal("%"), bind.Null())),
	bind.Rows("procedures", ProcedureDescriptor, func(s *Schema) *[]*Procedure { return &s.Procedures },
		bind.Invoke(OpGetProcedures, bind.KindNullString, bind.KindNullString, bind.KindNullString).
			With(schemaCatalogRef, schemaRef, bind.Literal("%"))),
	bind.Rows("functions", FunctionDescriptor, func(s *Schema) *[]*Function { return &s.Functions },
		bind.Invoke(OpGetFunctions, bind.KindNullString, bind.KindNullString, bind.KindNullString).
			With(schemaCatalogRef, schemaRef, bind.Literal("%"))),
	bind.Rows("udts", UDTDescriptor, func(s *Schema) *[]*UDT { return &s.UDTs },
		bind.Invoke(OpGetUDTs, bind.KindNullString, bind.KindNullString, bind.KindNullString, bind.KindAny).
			With(schemaCatalogRef, schemaRef, bind.Literal("%"), bind.Null())),
	bind.Children("crossReferences", CrossReferenceDescriptor, func(s *Schema) *[]*CrossReference { return &s.CrossReferences }),
)
