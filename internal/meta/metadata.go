package meta

import (
	"github.com/dbsmedya/dbmeta/internal/bind"
)

// Metadata is the root of the record graph.
type Metadata struct {
	DatabaseProductName         string `yaml:"databaseProductName" json:"databaseProductName"`
	DatabaseProductVersion      string `yaml:"databaseProductVersion" json:"databaseProductVersion"`
	DatabaseMajorVersion        int32  `yaml:"databaseMajorVersion" json:"databaseMajorVersion"`
	DatabaseMinorVersion        int32  `yaml:"databaseMinorVersion" json:"databaseMinorVersion"`
	DriverName                  string `yaml:"driverName" json:"driverName"`
	DriverVersion               string `yaml:"driverVersion" json:"driverVersion"`
	UserName                    string `yaml:"userName" json:"userName"`
	IdentifierQuoteString       string `yaml:"identifierQuoteString" json:"identifierQuoteString"`
	CatalogSeparator            string `yaml:"catalogSeparator" json:"catalogSeparator"`
	CatalogTerm                 string `yaml:"catalogTerm" json:"catalogTerm"`
	SchemaTerm                  string `yaml:"schemaTerm" json:"schemaTerm"`
	ProcedureTerm               string `yaml:"procedureTerm" json:"procedureTerm"`
	SQLKeywords                 string `yaml:"sqlKeywords" json:"sqlKeywords"`
	CatalogAtStart              bool   `yaml:"catalogAtStart" json:"catalogAtStart"`
	ReadOnly                    bool   `yaml:"readOnly" json:"readOnly"`
	DefaultTransactionIsolation int32  `yaml:"defaultTransactionIsolation" json:"defaultTransactionIsolation"`
	ResultSetHoldability        int32  `yaml:"resultSetHoldability" json:"resultSetHoldability"`
	SupportsTransactions        bool   `yaml:"supportsTransactions" json:"supportsTransactions"`
	SupportsConvert             bool   `yaml:"supportsConvert" json:"supportsConvert"`

	DeletesAreDetected                []ResultSetTypeFact `yaml:"deletesAreDetected,omitempty" json:"deletesAreDetected,omitempty"`
	InsertsAreDetected                []ResultSetTypeFact `yaml:"insertsAreDetected,omitempty" json:"insertsAreDetected,omitempty"`
	UpdatesAreDetected                []ResultSetTypeFact `yaml:"updatesAreDetected,omitempty" json:"updatesAreDetected,omitempty"`
	OthersDeletesAreVisible           []ResultSetTypeFact `yaml:"othersDeletesAreVisible,omitempty" json:"othersDeletesAreVisible,omitempty"`
	OthersInsertsAreVisible           []ResultSetTypeFact `yaml:"othersInsertsAreVisible,omitempty" json:"othersInsertsAreVisible,omitempty"`
	OthersUpdatesAreVisible           []ResultSetTypeFact `yaml:"othersUpdatesAreVisible,omitempty" json:"othersUpdatesAreVisible,omitempty"`
	OwnDeletesAreVisible              []ResultSetTypeFact `yaml:"ownDeletesAreVisible,omitempty" json:"ownDeletesAreVisible,omitempty"`
	OwnInsertsAreVisible              []ResultSetTypeFact `yaml:"ownInsertsAreVisible,omitempty" json:"ownInsertsAreVisible,omitempty"`
	OwnUpdatesAreVisible              []ResultSetTypeFact `yaml:"ownUpdatesAreVisible,omitempty" json:"ownUpdatesAreVisible,omitempty"`
	SupportsResultSetType             []ResultSetTypeFact `yaml:"supportsResultSetType,omitempty" json:"supportsResultSetType,omitempty"`
	SupportsResultSetConcurrency      []ConcurrencyFact   `yaml:"supportsResultSetConcurrency,omitempty" json:"supportsResultSetConcurrency,omitempty"`
	SupportsResultSetHoldability      []HoldabilityFact   `yaml:"supportsResultSetHoldability,omitempty" json:"supportsResultSetHoldability,omitempty"`
	SupportsTransactionIsolationLevel []IsolationFact     `yaml:"supportsTransactionIsolationLevel,omitempty" json:"supportsTransactionIsolationLevel,omitempty"`
	SupportsConvertTypes              []ConvertFact       `yaml:"supportsConvertTypes,omitempty" json:"supportsConvertTypes,omitempty"`

	Catalogs             []*Catalog            `yaml:"catalogs,omitempty" json:"catalogs,omitempty"`
	TableTypes           []*TableType          `yaml:"tableTypes,omitempty" json:"tableTypes,omitempty"`
	TypeInfo             []*TypeInfo           `yaml:"typeInfo,omitempty" json:"typeInfo,omitempty"`
	ClientInfoProperties []*ClientInfoProperty `yaml:"clientInfoProperties,omitempty" json:"clientInfoProperties,omitempty"`
	CrossReferences      []*CrossReference     `yaml:"crossReferences,omitempty" json:"crossReferences,omitempty"`
}

// Key implements bind.Keyed. The root has a single instance.
func (m *Metadata) Key() string {
	return ""
}

// Schemas returns every schema of every catalog.
func (m *Metadata) Schemas() []*Schema {
	var out []*Schema
	for _, c := range m.Catalogs {
		out = append(out, c.Schemas...)
	}
	return out
}

// Tables returns every table of the graph in traversal order.
func (m *Metadata) Tables() []*Table {
	var out []*Table
	for _, s := range m.Schemas() {
		out = append(out, s.Tables...)
	}
	return out
}

func scalar(op string) bind.Call {
	return bind.Invoke(op)
}

// perResultSetType probes op once per result set type.
func perResultSetType(op string) bind.Call {
	c := bind.Invoke(op, bind.KindInt32)
	for _, t := range resultSetTypes {
		c = c.With(bind.Literal(t))
	}
	return c
}

func perConcurrency() bind.Call {
	c := bind.Invoke(OpSupportsResultSetConcur, bind.KindInt32, bind.KindInt32)
	for _, t := range resultSetTypes {
		for _, cc := range concurrencies {
			c = c.With(bind.Literal(t), bind.Literal(cc))
		}
	}
	return c
}

func perHoldability() bind.Call {
	c := bind.Invoke(OpSupportsResultSetHold, bind.KindInt32)
	for _, h := range holdabilities {
		c = c.With(bind.Literal(h))
	}
	return c
}

func perIsolationLevel() bind.Call {
	c := bind.Invoke(OpSupportsIsolationLevel, bind.KindInt32)
	for _, l := range isolationLevels {
		c = c.With(bind.Literal(l))
	}
	return c
}

func perConvertPair() bind.Call {
	c := bind.Invoke(OpSupportsConvert, bind.KindInt32, bind.KindInt32)
	for _, from := range convertTypes {
		for _, to := range convertTypes {
			c = c.With(bind.Literal(from), bind.Literal(to))
		}
	}
	return c
}

func resultSetTypeFacts(name, op string, ref func(*Metadata) *[]ResultSetTypeFact) *bind.Field {
	return bind.Facts(name, ref, newResultSetTypeFact, perResultSetType(op))
}

// MetadataDescriptor binds the root record.
var MetadataDescriptor = bind.NewType[Metadata]("metadata",
	bind.String("databaseProductName", "", func(m *Metadata) *string { return &m.DatabaseProductName }).From(scalar(OpGetDatabaseProductName)),
	bind.String("databaseProductVersion", "", func(m *Metadata) *string { return &m.DatabaseProductVersion }).From(scalar(OpGetDatabaseProductVersion)),
	bind.Int32("databaseMajorVersion", "", func(m *Metadata) *int32 { return &m.DatabaseMajorVersion }).From(scalar(OpGetDatabaseMajorVersion)),
	bind.Int32("databaseMinorVersion", "", func(m *Metadata) *int32 { return &m.DatabaseMinorVersion }).From(scalar(OpGetDatabaseMinorVersion)),
	bind.String("driverName", "", func(m *Metadata) *string { return &m.DriverName }).From(scalar(OpGetDriverName)),
	bind.String("driverVersion", "", func(m *Metadata) *string { return &m.DriverVersion }).From(scalar(OpGetDriverVersion)),
	bind.String("userName", "", func(m *Metadata) *string { return &m.UserName }).From(scalar(OpGetUserName)),
	bind.String("identifierQuoteString", "", func(m *Metadata) *string { return &m.IdentifierQuoteString }).From(scalar(OpGetIdentifierQuoteString)),
	bind.String("catalogSeparator", "", func(m *Metadata) *string { return &m.CatalogSeparator }).From(scalar(OpGetCatalogSeparator)),
	bind.String("catalogTerm", "", func(m *Metadata) *string { return &m.CatalogTerm }).From(scalar(OpGetCatalogTerm)),
	bind.String("schemaTerm", "", func(m *Metadata) *string { return &m.SchemaTerm }).From(scalar(OpGetSchemaTerm)),
	bind.String("procedureTerm", "", func(m *Metadata) *string { return &m.ProcedureTerm }).From(scalar(OpGetProcedureTerm)),
	bind.String("sqlKeywords", "", func(m *Metadata) *string { return &m.SQLKeywords }).From(scalar(OpGetSQLKeywords)),
	bind.Bool("catalogAtStart", "", func(m *Metadata) *bool { return &m.CatalogAtStart }).From(scalar(OpIsCatalogAtStart)),
	bind.Bool("readOnly", "", func(m *Metadata) *bool { return &m.ReadOnly }).From(scalar(OpIsReadOnly)),
	bind.Int32("defaultTransactionIsolation", "", func(m *Metadata) *int32 { return &m.DefaultTransactionIsolation }).From(scalar(OpGetDefaultIsolation)),
	bind.Int32("resultSetHoldability", "", func(m *Metadata) *int32 { return &m.ResultSetHoldability }).From(scalar(OpGetResultSetHoldability)),
	bind.Bool("supportsTransactions", "", func(m *Metadata) *bool { return &m.SupportsTransactions }).From(scalar(OpSupportsTransactions)),
	bind.Bool("supportsConvert", "", func(m *Metadata) *bool { return &m.SupportsConvert }).From(scalar(OpSupportsConvert)),

	resultSetTypeFacts("deletesAreDetected", OpDeletesAreDetected, func(m *Metadata) *[]ResultSetTypeFact { return &m.DeletesAreDetected }),
	resultSetTypeFacts("insertsAreDetected", OpInsertsAreDetected, func(m *Metadata) *[]ResultSetTypeFact { return &m.InsertsAreDetected }),
	resultSetTypeFacts("updatesAreDetected", OpUpdatesAreDetected, func(m *Metadata) *[]ResultSetTypeFact { return &m.UpdatesAreDetected }),
	resultSetTypeFacts("othersDeletesAreVisible", OpOthersDeletesAreVisible, func(m *Metadata) *[]ResultSetTypeFact { return &m.OthersDeletesAreVisible }),
	resultSetTypeFacts("othersInsertsAreVisible", OpOthersInsertsAreVisible, func(m *Metadata) *[]ResultSetTypeFact { return &m.OthersInsertsAreVisible }),
	resultSetTypeFacts("othersUpdatesAreVisible", OpOthersUpdatesAreVisible, func(m *Metadata) *[]ResultSetTypeFact { return &m.OthersUpdatesAreVisible }),
	resultSetTypeFacts("ownDeletesAreVisible", OpOwnDeletesAreVisible, func(m *Metadata) *[]ResultSetTypeFact { return &m.OwnDeletesAreVisible }),
	resultSetTypeFacts("ownInsertsAreVisible", OpOwnInsertsAreVisible, func(m *Metadata) *[]ResultSetTypeFact { return &m.OwnInsertsAreVisible }),
	resultSetTypeFacts("ownUpdatesAreVisible", OpOwnUpdatesAreVisible, func(m *Metadata) *[]ResultSetTypeFact { return &m.OwnUpdatesAreVisible }),
	resultSetTypeFacts("supportsResultSetType", OpSupportsResultSetType, func(m *Metadata) *[]ResultSetTypeFact { return &m.SupportsResultSetType }),
	bind.Facts("supportsResultSetConcurrency", func(m *Metadata) *[]ConcurrencyFact { return &m.SupportsResultSetConcurrency },
		newConcurrencyFact, perConcurrency()),
	bind.Facts("supportsResultSetHoldability", func(m *Metadata) *[]HoldabilityFact { return &m.SupportsResultSetHoldability },
		newHoldabilityFact, perHoldability()),
	bind.Facts("supportsTransactionIsolationLevel", func(m *Metadata) *[]IsolationFact { return &m.SupportsTransactionIsolationLevel },
		newIsolationFact, perIsolationLevel()),
	bind.Facts("supportsConvertTypes", func(m *Metadata) *[]ConvertFact { return &m.SupportsConvertTypes },
		newConvertFact, perConvertPair()),

	bind.Rows("tableTypes", TableTypeDescriptor, func(m *Metadata) *[]*TableType { return &m.TableTypes }, scalar(OpGetTableTypes)),
	bind.Rows("typeInfo", TypeInfoDescriptor, func(m *Metadata) *[]*TypeInfo { return &m.TypeInfo }, scalar(OpGetTypeInfo)),
	bind.Rows("clientInfoProperties", ClientInfoPropertyDescriptor, func(m *Metadata) *[]*ClientInfoProperty { return &m.ClientInfoProperties }, scalar(OpGetClientInfoProperties)),
	bind.Rows("catalogs", CatalogDescriptor, func(m *Metadata) *[]*Catalog { return &m.Catalogs }, scalar(OpGetCatalogs)),
	bind.Children("crossReferences", CrossReferenceDescriptor, func(m *Metadata) *[]*CrossReference { return &m.CrossReferences }),
)
