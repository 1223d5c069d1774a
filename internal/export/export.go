// Package export serializes an extraction run as YAML or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/extract"
	"github.com/dbsmedya/dbmeta/internal/meta"
	"github.com/dbsmedya/dbmeta/internal/types"
)

// Supported formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Stdout is the output path that writes to standard output.
const Stdout = "-"

// SourceInfo identifies the described database. Credentials are never
// exported.
type SourceInfo struct {
	Driver   string `yaml:"driver" json:"driver"`
	Host     string `yaml:"host,omitempty" json:"host,omitempty"`
	Port     int    `yaml:"port,omitempty" json:"port,omitempty"`
	Database string `yaml:"database,omitempty" json:"database,omitempty"`
}

// Diagnostic is the exported form of a bind.Diagnostic.
type Diagnostic struct {
	Code      string `yaml:"code" json:"code"`
	Severity  string `yaml:"severity" json:"severity"`
	Path      string `yaml:"path" json:"path"`
	Label     string `yaml:"label,omitempty" json:"label,omitempty"`
	Operation string `yaml:"operation,omitempty" json:"operation,omitempty"`
	Args      []any  `yaml:"args,omitempty" json:"args,omitempty"`
	Error     string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Document is one exported run.
type Document struct {
	Generated   time.Time      `yaml:"generated" json:"generated"`
	Source      SourceInfo     `yaml:"source" json:"source"`
	State       string         `yaml:"state" json:"state"`
	Stats       types.Stats    `yaml:"stats" json:"stats"`
	Diagnostics []Diagnostic   `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
	Metadata    *meta.Metadata `yaml:"metadata" json:"metadata"`
}

// NewDocument builds the exported form of res.
func NewDocument(res *extract.Result, src SourceInfo, generated time.Time) *Document {
	doc := &Document{
		Generated: generated.UTC(),
		Source:    src,
		State:     res.State.String(),
		Stats:     res.Stats,
		Metadata:  res.Metadata,
	}
	for _, d := range res.Diagnostics {
		doc.Diagnostics = append(doc.Diagnostics, newDiagnostic(d))
	}
	return doc
}

func newDiagnostic(d bind.Diagnostic) Diagnostic {
	out := Diagnostic{
		Code:      string(d.Code),
		Severity:  d.Severity.String(),
		Path:      d.Path,
		Label:     d.Label,
		Operation: d.Operation,
		Args:      d.Args,
	}
	if d.Err != nil {
		out.Error = d.Err.Error()
	}
	return out
}

// Write encodes doc to w in format.
func Write(w io.Writer, format string, doc *Document) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// WriteFile encodes doc to path, or to stdout when path is "-" or empty.
func WriteFile(path, format string, doc *Document) (err error) {
	if path == "" || path == Stdout {
		return Write(os.Stdout, format, doc)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()
	return Write(f, format, doc)
}
