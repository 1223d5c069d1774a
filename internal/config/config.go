// Package config provides configuration structures and loading for dbmeta.
package config

// Config represents the complete application configuration.
type Config struct {
	Source  DatabaseConfig `yaml:"source" mapstructure:"source"`
	Binding BindingConfig  `yaml:"binding" mapstructure:"binding"`
	Output  OutputConfig   `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// Supported source drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Cross-reference scopes.
const (
	CrossReferencesSchema = "schema"
	CrossReferencesRun    = "run"
	CrossReferencesNone   = "none"
)

// DatabaseConfig represents the connection to the database being described.
type DatabaseConfig struct {
	Driver             string `yaml:"driver" mapstructure:"driver"` // mysql or postgres
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// BindingConfig controls how metadata is bound into descriptor records.
type BindingConfig struct {
	Suppressions           []string `yaml:"suppressions" mapstructure:"suppressions"` // "type/field" paths
	SynthesizeEmptyCatalog bool     `yaml:"synthesize_empty_catalog" mapstructure:"synthesize_empty_catalog"`
	SynthesizeEmptySchema  bool     `yaml:"synthesize_empty_schema" mapstructure:"synthesize_empty_schema"`
	FailOnUnknownColumn    bool     `yaml:"fail_on_unknown_column" mapstructure:"fail_on_unknown_column"`
	FailOnUnknownOperation bool     `yaml:"fail_on_unknown_operation" mapstructure:"fail_on_unknown_operation"`
	CrossReferences        string   `yaml:"cross_references" mapstructure:"cross_references"` // schema, run or none
	SkipSelfReferences     bool     `yaml:"skip_self_references" mapstructure:"skip_self_references"`
}

// OutputConfig represents export settings.
type OutputConfig struct {
	Format  string `yaml:"format" mapstructure:"format"` // yaml or json
	Path    string `yaml:"path" mapstructure:"path"`     // file path, "-" for stdout
	Summary bool   `yaml:"summary" mapstructure:"summary"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
// The source port is left at zero and filled from the driver when loading.
func DefaultConfig() *Config {
	return &Config{
		Source: DatabaseConfig{
			Driver:             DriverMySQL,
			TLS:                "preferred",
			MaxConnections:     1,
			MaxIdleConnections: 1,
		},
		Binding: BindingConfig{
			SynthesizeEmptyCatalog: true,
			SynthesizeEmptySchema:  true,
			CrossReferences:        CrossReferencesSchema,
		},
		Output: OutputConfig{
			Format:  "yaml",
			Path:    "-",
			Summary: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// DefaultPort returns the conventional port for a driver, or 0 if unknown.
func DefaultPort(driver string) int {
	switch driver {
	case DriverMySQL:
		return 3306
	case DriverPostgres:
		return 5432
	default:
		return 0
	}
}

// applyDriverDefaults fills values that depend on the selected driver.
func (c *Config) applyDriverDefaults() {
	if c.Source.Port == 0 {
		c.Source.Port = DefaultPort(c.Source.Driver)
	}
}
