package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/dbmeta/internal/config"
	"github.com/dbsmedya/dbmeta/internal/meta"
	"github.com/dbsmedya/dbmeta/internal/source"
)

func TestValidateCommandStructure(t *testing.T) {
	assert.NotNil(t, validateCmd)
	assert.Equal(t, "validate", validateCmd.Use)
	assert.Contains(t, validateCmd.Short, "Validate")
	assert.NotNil(t, validateCmd.RunE)

	doc := validateCmd.Long
	assert.Contains(t, doc, "Checks performed")
	assert.Contains(t, doc, "Database connectivity")
	assert.Contains(t, doc, "dbmeta validate")

	offline := validateCmd.Flags().Lookup("offline")
	require.NotNil(t, offline)
	assert.Equal(t, "false", offline.DefValue)
}

func findStatus(statuses []operationStatus, op string) (operationStatus, bool) {
	for _, st := range statuses {
		if st.Operation == op {
			return st, true
		}
	}
	return operationStatus{}, false
}

func TestOperationStatuses(t *testing.T) {
	tests := []struct {
		name           string
		dialect        *source.Dialect
		binding        config.BindingConfig
		op             string
		wantPresent    bool
		wantSupported  bool
		wantSuppressed bool
	}{
		{
			name:          "mysql columns supported",
			dialect:       source.MySQL(),
			op:            meta.OpGetColumns,
			wantPresent:   true,
			wantSupported: true,
		},
		{
			name:        "mysql pseudo columns unsupported",
			dialect:     source.MySQL(),
			op:          meta.OpGetPseudoColumns,
			wantPresent: true,
		},
		{
			name:           "suppressed unsupported operation",
			dialect:        source.MySQL(),
			binding:        config.BindingConfig{Suppressions: []string{"table/pseudoColumns"}},
			op:             meta.OpGetPseudoColumns,
			wantPresent:    true,
			wantSuppressed: true,
		},
		{
			name:          "cross reference checked by default",
			dialect:       source.Postgres(),
			op:            meta.OpGetCrossReference,
			wantPresent:   true,
			wantSupported: true,
		},
		{
			name:    "cross reference skipped with scope none",
			dialect: source.Postgres(),
			binding: config.BindingConfig{CrossReferences: config.CrossReferencesNone},
			op:      meta.OpGetCrossReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := findStatus(operationStatuses(tt.dialect, tt.binding), tt.op)
			require.Equal(t, tt.wantPresent, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantSupported, st.Supported)
			assert.Equal(t, tt.wantSuppressed, st.Suppressed)
			assert.NotEmpty(t, st.Paths)
		})
	}
}

func TestOperationStatusesRunScope(t *testing.T) {
	statuses := operationStatuses(source.MySQL(), config.BindingConfig{CrossReferences: config.CrossReferencesRun})
	st, ok := findStatus(statuses, meta.OpGetCrossReference)
	require.True(t, ok)
	assert.Equal(t, []string{meta.PathMetadataCrossReferences}, st.Paths)
}

func TestRunValidateOffline(t *testing.T) {
	originalCfgFile := cfgFile
	originalOffline := validateOffline
	originalSuppressions := suppressions
	defer func() {
		cfgFile = originalCfgFile
		validateOffline = originalOffline
		suppressions = originalSuppressions
		resetOutputWriter()
	}()

	cfgFile = writeConfig(t, testConfig)
	validateOffline = true
	suppressions = []string{"table/nope"}

	var buf bytes.Buffer
	setOutputWriter(&buf)

	require.NoError(t, runValidate(validateCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Configuration Validation")
	assert.Contains(t, out, "table/nope names no known type/field")
	assert.Contains(t, out, "2 paths, 1 unknown")
	assert.Contains(t, out, "getPseudoColumns unsupported, used by table/pseudoColumns")
	assert.NotContains(t, out, "[Connectivity]")
	assert.Contains(t, out, "Validation Complete")
}

func TestRunValidateStrictUnsupported(t *testing.T) {
	originalCfgFile := cfgFile
	originalOffline := validateOffline
	defer func() {
		cfgFile = originalCfgFile
		validateOffline = originalOffline
		resetOutputWriter()
	}()

	cfgFile = writeConfig(t, strings.Replace(testConfig, "binding:\n", "binding:\n  fail_on_unknown_operation: true\n", 1))
	validateOffline = true

	var buf bytes.Buffer
	setOutputWriter(&buf)

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "❌ getPseudoColumns unsupported")
}
