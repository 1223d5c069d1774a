package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCommandStructure(t *testing.T) {
	assert.NotNil(t, planCmd)
	assert.Equal(t, "plan", planCmd.Use)
	assert.NotEmpty(t, planCmd.Short)
	assert.Contains(t, planCmd.Long, "Example:")
	assert.NotNil(t, planCmd.RunE)

	colorFlag := planCmd.Flags().Lookup("color")
	require.NotNil(t, colorFlag)
	assert.Equal(t, "false", colorFlag.DefValue)
}

func TestPlanSuppressions(t *testing.T) {
	t.Run("missing config uses flags only", func(t *testing.T) {
		paths, err := planSuppressions(filepath.Join(t.TempDir(), "missing.yaml"),
			CLIOverrides{Suppressions: []string{"table/indexInfo"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"table/indexInfo"}, paths)
	})

	t.Run("config and flags are merged", func(t *testing.T) {
		paths, err := planSuppressions(writeConfig(t, testConfig),
			CLIOverrides{Suppressions: []string{"schema/procedures"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"table/columnPrivileges", "schema/procedures"}, paths)
	})

	t.Run("invalid config fails", func(t *testing.T) {
		_, err := planSuppressions(writeConfig(t, "source:\n  driver: oracle\n"), CLIOverrides{})
		assert.Error(t, err)
	})
}

func TestRunPlan(t *testing.T) {
	originalCfgFile := cfgFile
	originalSuppressions := suppressions
	defer func() {
		cfgFile = originalCfgFile
		suppressions = originalSuppressions
		resetOutputWriter()
	}()

	cfgFile = writeConfig(t, testConfig)
	suppressions = []string{"table/nope"}

	var buf bytes.Buffer
	setOutputWriter(&buf)

	require.NoError(t, runPlan(planCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Type Tree")
	assert.Contains(t, out, "tables: table (getTables)")
	assert.Contains(t, out, "columnPrivileges: columnPrivilege (getColumnPrivileges) [suppressed]")
	assert.Contains(t, out, "[1] metadata (root)")
	assert.Contains(t, out, "table/nope (unknown path)")
	assert.NotContains(t, out, "\x1b[")
}
