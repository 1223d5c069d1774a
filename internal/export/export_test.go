package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/extract"
	"github.com/dbsmedya/dbmeta/internal/meta"
	"github.com/dbsmedya/dbmeta/internal/types"
)

func strPtr(s string) *string { return &s }

func sampleResult() *extract.Result {
	table := &meta.Table{TableCat: strPtr("shop"), TableName: "orders", TableType: "TABLE"}
	table.Columns = []*meta.Column{
		{TableChild: meta.TableChild{TableCat: strPtr("shop"), TableName: "orders"}, ColumnName: "id", DataType: 4, TypeName: "INT", OrdinalPosition: 1, IsNullable: "NO"},
	}
	md := &meta.Metadata{
		DatabaseProductName: "MySQL",
		Catalogs: []*meta.Catalog{{
			TableCat: "shop",
			Schemas:  []*meta.Schema{{TableSchem: "", TableCatalog: strPtr("shop"), Tables: []*meta.Table{table}}},
		}},
	}
	return &extract.Result{
		Metadata: md,
		Diagnostics: bind.Diagnostics{
			{Code: bind.CodeUnsupportedOperation, Severity: bind.SeverityWarning, Path: "table/superTables",
				Operation: meta.OpGetSuperTables, Args: []any{"shop", nil, "orders"}, Err: errors.New("unsupported operation")},
		},
		Stats: types.Stats{RecordsBound: 4, Invocations: 9, Synthesized: 1, Duration: 1500 * time.Millisecond},
		State: extract.StateBound,
	}
}

func sampleDocument() *Document {
	return NewDocument(sampleResult(),
		SourceInfo{Driver: "mysql", Host: "db.local", Port: 3306, Database: "shop"},
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600)))
}

func TestNewDocument(t *testing.T) {
	doc := sampleDocument()

	assert.Equal(t, "BOUND", doc.State)
	assert.Equal(t, time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC), doc.Generated)
	require.Len(t, doc.Diagnostics, 1)
	d := doc.Diagnostics[0]
	assert.Equal(t, "unsupported_operation", d.Code)
	assert.Equal(t, "warning", d.Severity)
	assert.Equal(t, "unsupported operation", d.Error)
	assert.Equal(t, []any{"shop", nil, "orders"}, d.Args)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleDocument()))

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "BOUND", out["state"])
	stats := out["stats"].(map[string]any)
	assert.Equal(t, 4, stats["records_bound"])
	assert.Equal(t, "1.5s", stats["duration"])

	md := out["metadata"].(map[string]any)
	assert.Equal(t, "MySQL", md["databaseProductName"])
	catalogs := md["catalogs"].([]any)
	schema := catalogs[0].(map[string]any)["schemas"].([]any)[0].(map[string]any)
	assert.Equal(t, "", schema["tableSchem"])
	table := schema["tables"].([]any)[0].(map[string]any)
	column := table["columns"].([]any)[0].(map[string]any)

	// Table coordinates are inlined into child records.
	assert.Equal(t, "shop", column["tableCat"])
	assert.Equal(t, "orders", column["tableName"])
	assert.Equal(t, "id", column["columnName"])
	assert.NotContains(t, column, "node")
	assert.NotContains(t, buf.String(), "password")
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleDocument()))

	var out struct {
		Source      SourceInfo `json:"source"`
		Diagnostics []struct {
			Path string `json:"path"`
		} `json:"diagnostics"`
		Metadata struct {
			Catalogs []struct {
				TableCat string `json:"tableCat"`
			} `json:"catalogs"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, SourceInfo{Driver: "mysql", Host: "db.local", Port: 3306, Database: "shop"}, out.Source)
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, "table/superTables", out.Diagnostics[0].Path)
	require.Len(t, out.Metadata.Catalogs, 1)
	assert.Equal(t, "shop", out.Metadata.Catalogs[0].TableCat)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "xml", sampleDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.json")
	require.NoError(t, WriteFile(path, FormatJSON, sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), `"databaseProductName": "MySQL"`)
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "meta.yaml"), FormatYAML, sampleDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output file")
}
