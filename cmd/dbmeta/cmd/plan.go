package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/meta"
	"github.com/dbsmedya/dbmeta/internal/report"
)

var planColor bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the descriptor type tree and binding order",
	Long: `Plan prints the tree of record types an extraction binds, the source
operation filling each collection and the order types are first bound.
No database connection is made.

The plan shows:
  - Type tree from the metadata root along collection fields
  - Suppressed collections, marked and not expanded
  - Binding order (parent types first)
  - Suppressed paths, with paths naming no known field flagged

Suppressions come from the configuration file, when it exists, and from
--suppress flags.

Example:
  dbmeta plan --config dbmeta.yaml
  dbmeta plan -s table/columns -s schema/procedures`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planColor, "color", false,
		"Color the output")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	paths, err := planSuppressions(GetConfigFile(), GetCLIOverrides())
	if err != nil {
		return err
	}

	g, err := meta.TypeGraph()
	if err != nil {
		return fmt.Errorf("failed to build type graph: %w", err)
	}

	printer := report.New(outputWriter, planColor && color.SupportColor())
	return printer.Plan(g, bind.NewSuppressions(paths...))
}

// planSuppressions collects suppressed paths from the config file, if it
// exists, and the CLI overrides.
func planSuppressions(configFile string, overrides CLIOverrides) ([]string, error) {
	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		return overrides.Suppressions, nil
	}
	cfg, err := loadConfig(configFile, overrides)
	if err != nil {
		return nil, err
	}
	return cfg.Binding.Suppressions, nil
}
