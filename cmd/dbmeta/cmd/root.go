package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/dbmeta/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile         string
	envFile         string
	logLevel        string
	logFormat       string
	outputFormat    string
	outputPath      string
	crossReferences string
	suppressions    []string
)

// outputWriter receives exports and reports, can be overridden in tests
var outputWriter io.Writer = os.Stdout

// errWriter receives run summaries so stdout exports stay clean
var errWriter io.Writer = os.Stderr

func setOutputWriter(w io.Writer) {
	outputWriter = w
}

func resetOutputWriter() {
	outputWriter = os.Stdout
}

var rootCmd = &cobra.Command{
	Use:   "dbmeta",
	Short: "Relational database metadata extractor",
	Long: `Extract the structural metadata of a relational database (catalogs,
schemas, tables, columns, keys, indexes, routines, types and capability
facts) into a YAML or JSON document.

Features:
  - Declarative record descriptors bound from metadata result sets
  - MySQL and PostgreSQL sources over information_schema and pg_catalog
  - Suppression of individual fields or collections by type/field path
  - Cross-reference pass pairing every table of a schema or run
  - Non-fatal diagnostics for unsupported operations and unknown columns`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "dbmeta.yaml",
		"Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		"Dotenv file loaded before the configuration is read")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output overrides
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "",
		"Override output format (yaml, json)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "",
		"Override output path, - for stdout")

	// Binding overrides
	rootCmd.PersistentFlags().StringVar(&crossReferences, "cross-references", "",
		"Override cross-reference scope (schema, run, none)")
	rootCmd.PersistentFlags().StringSliceVarP(&suppressions, "suppress", "s", nil,
		"Suppress a type/field path, repeatable")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	EnvFile         string
	LogLevel        string
	LogFormat       string
	OutputFormat    string
	OutputPath      string
	CrossReferences string
	Suppressions    []string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		EnvFile:         envFile,
		LogLevel:        logLevel,
		LogFormat:       logFormat,
		OutputFormat:    outputFormat,
		OutputPath:      outputPath,
		CrossReferences: crossReferences,
		Suppressions:    suppressions,
	}
}

// loadConfig reads the dotenv file and the config file, applies the CLI
// overrides and validates the result.
func loadConfig(configFile string, overrides CLIOverrides) (*config.Config, error) {
	if err := config.LoadEnvFile(overrides.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.OutputFormat, overrides.OutputPath,
		overrides.CrossReferences, overrides.Suppressions)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// describeSource renders the source for report headers. The password is
// never included.
func describeSource(db config.DatabaseConfig) string {
	return fmt.Sprintf("%s://%s@%s:%d/%s", db.Driver, db.User, db.Host, db.Port, db.Database)
}
