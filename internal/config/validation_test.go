package config

import (
	"errors"
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Source.Host = "localhost"
	cfg.Source.Port = 3306
	cfg.Source.User = "root"
	cfg.Source.Password = "pass"
	return cfg
}

func TestValidConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing host", func(c *Config) { c.Source.Host = "" }, "source.host"},
		{"invalid port", func(c *Config) { c.Source.Port = 70000 }, "source.port"},
		{"missing user", func(c *Config) { c.Source.User = "" }, "source.user"},
		{"unknown driver", func(c *Config) { c.Source.Driver = "oracle" }, "source.driver"},
		{"postgres without database", func(c *Config) { c.Source.Driver = DriverPostgres }, "source.database"},
		{"invalid tls", func(c *Config) { c.Source.TLS = "maybe" }, "source.tls"},
		{"negative pool", func(c *Config) { c.Source.MaxConnections = -1 }, "source.max_connections"},
		{"bad scope", func(c *Config) { c.Binding.CrossReferences = "catalog" }, "binding.cross_references"},
		{"bad suppression", func(c *Config) { c.Binding.Suppressions = []string{"table"} }, "binding.suppressions[0]"},
		{"nested suppression", func(c *Config) { c.Binding.Suppressions = []string{"a/b/c"} }, "binding.suppressions[0]"},
		{"bad output format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			found := false
			for _, e := range verrs {
				if e.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for %s, got: %v", tt.field, err)
			}
		})
	}
}

func TestMySQLWithoutDatabaseIsValid(t *testing.T) {
	cfg := validConfig()
	cfg.Source.Database = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("mysql without database should be valid: %v", err)
	}
}

func TestMultipleErrors(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, "validation failed:") {
		t.Errorf("unexpected message: %s", msg)
	}
	for _, field := range []string{"source.driver", "source.host", "source.port", "source.user"} {
		if !strings.Contains(msg, field) {
			t.Errorf("expected %s in %s", field, msg)
		}
	}
}

func TestValidationErrorsEmpty(t *testing.T) {
	if ValidationErrors(nil).Error() != "" {
		t.Error("empty ValidationErrors should render empty")
	}
}
