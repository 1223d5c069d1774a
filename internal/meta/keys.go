package meta

import (
	"github.com/dbsmedya/dbmeta/internal/bind"
)

// PortedKey is one column of a foreign key relationship as returned by
// getImportedKeys, getExportedKeys and getCrossReference.
type PortedKey struct {
	PktableCat    *string `yaml:"pktableCat" json:"pktableCat"`
	PktableSchem  *string `yaml:"pktableSchem" json:"pktableSchem"`
	PktableName   string  `yaml:"pktableName" json:"pktableName"`
	PkcolumnName  string  `yaml:"pkcolumnName" json:"pkcolumnName"`
	FktableCat    *string `yaml:"fktableCat" json:"fktableCat"`
	FktableSchem  *string `yaml:"fktableSchem" json:"fktableSchem"`
	FktableName   string  `yaml:"fktableName" json:"fktableName"`
	FkcolumnName  string  `yaml:"fkcolumnName" json:"fkcolumnName"`
	KeySeq        int16   `yaml:"keySeq" json:"keySeq"`
	UpdateRule    int16   `yaml:"updateRule" json:"updateRule"`
	DeleteRule    int16   `yaml:"deleteRule" json:"deleteRule"`
	FkName        *string `yaml:"fkName" json:"fkName"`
	PkName        *string `yaml:"pkName" json:"pkName"`
	Deferrability int16   `yaml:"deferrability" json:"deferrability"`
}

// SelfReferencing reports whether the key points back at its own table.
func (k *PortedKey) SelfReferencing() bool {
	return str(k.PktableCat) == str(k.FktableCat) &&
		str(k.PktableSchem) == str(k.FktableSchem) &&
		k.PktableName == k.FktableName
}

// PortedKeyDescriptor is the abstract base of foreign key records.
var PortedKeyDescriptor = bind.NewBase("portedKey",
	bind.NullString("pktableCat", "PKTABLE_CAT", func(k *PortedKey) **string { return &k.PktableCat }),
	bind.NullString("pktableSchem", "PKTABLE_SCHEM", func(k *PortedKey) **string { return &k.PktableSchem }),
	bind.String("pktableName", "PKTABLE_NAME", func(k *PortedKey) *string { return &k.PktableName }),
	bind.String("pkcolumnName", "PKCOLUMN_NAME", func(k *PortedKey) *string { return &k.PkcolumnName }),
	bind.NullString("fktableCat", "FKTABLE_CAT", func(k *PortedKey) **string { return &k.FktableCat }),
	bind.NullString("fktableSchem", "FKTABLE_SCHEM", func(k *PortedKey) **string { return &k.FktableSchem }),
	bind.String("fktableName", "FKTABLE_NAME", func(k *PortedKey) *string { return &k.FktableName }),
	bind.String("fkcolumnName", "FKCOLUMN_NAME", func(k *PortedKey) *string { return &k.FkcolumnName }),
	bind.Int16("keySeq", "KEY_SEQ", func(k *PortedKey) *int16 { return &k.KeySeq }),
	bind.Int16("updateRule", "UPDATE_RULE", func(k *PortedKey) *int16 { return &k.UpdateRule }),
	bind.Int16("deleteRule", "DELETE_RULE", func(k *PortedKey) *int16 { return &k.DeleteRule }),
	bind.NullString("fkName", "FK_NAME", func(k *PortedKey) **string { return &k.FkName }),
	bind.NullString("pkName", "PK_NAME", func(k *PortedKey) **string { return &k.PkName }),
	bind.Int16("deferrability", "DEFERRABILITY", func(k *PortedKey) *int16 { return &k.Deferrability }),
)

// ImportedKey is one getImportedKeys row.
type ImportedKey struct {
	node      `yaml:"-" json:"-"`
	PortedKey `yaml:",inline"`
}

// ExportedKey is one getExportedKeys row.
type ExportedKey struct {
	node      `yaml:"-" json:"-"`
	PortedKey `yaml:",inline"`
}

// CrossReference is one getCrossReference row.
type CrossReference struct {
	node      `yaml:"-" json:"-"`
	PortedKey `yaml:",inline"`
}

// ImportedKeyDescriptor binds getImportedKeys rows.
var ImportedKeyDescriptor = bind.Extends(bind.NewType[ImportedKey]("importedKey"),
	PortedKeyDescriptor, func(k *ImportedKey) *PortedKey { return &k.PortedKey })

// ExportedKeyDescriptor binds getExportedKeys rows.
var ExportedKeyDescriptor = bind.Extends(bind.NewType[ExportedKey]("exportedKey"),
	PortedKeyDescriptor, func(k *ExportedKey) *PortedKey { return &k.PortedKey })

// CrossReferenceDescriptor binds getCrossReference rows.
var CrossReferenceDescriptor = bind.Extends(bind.NewType[CrossReference]("crossReference"),
	PortedKeyDescriptor, func(k *CrossReference) *PortedKey { return &k.PortedKey })
