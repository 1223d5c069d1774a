package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source.Driver != DriverMySQL {
		t.Errorf("expected default driver mysql, got %s", cfg.Source.Driver)
	}
	if cfg.Source.Port != 0 {
		t.Errorf("expected port to be resolved from driver, got %d", cfg.Source.Port)
	}
	if cfg.Source.MaxConnections != 1 {
		t.Errorf("expected a single connection by default, got %d", cfg.Source.MaxConnections)
	}

	if !cfg.Binding.SynthesizeEmptyCatalog {
		t.Error("expected synthesize_empty_catalog true")
	}
	if !cfg.Binding.SynthesizeEmptySchema {
		t.Error("expected synthesize_empty_schema true")
	}
	if cfg.Binding.FailOnUnknownColumn || cfg.Binding.FailOnUnknownOperation {
		t.Error("strict toggles should default to false")
	}
	if cfg.Binding.CrossReferences != CrossReferencesSchema {
		t.Errorf("expected cross_references 'schema', got %s", cfg.Binding.CrossReferences)
	}

	if cfg.Output.Format != "yaml" || cfg.Output.Path != "-" {
		t.Errorf("unexpected output defaults %+v", cfg.Output)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected log output 'stderr', got %s", cfg.Logging.Output)
	}
}

func TestDefaultPort(t *testing.T) {
	tests := map[string]int{
		DriverMySQL:    3306,
		DriverPostgres: 5432,
		"sqlite":       0,
	}
	for driver, want := range tests {
		if got := DefaultPort(driver); got != want {
			t.Errorf("DefaultPort(%q) = %d, want %d", driver, got, want)
		}
	}
}

func TestApplyDriverDefaultsKeepsExplicitPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source.Driver = DriverPostgres
	cfg.Source.Port = 6543
	cfg.applyDriverDefaults()
	if cfg.Source.Port != 6543 {
		t.Errorf("explicit port overwritten: %d", cfg.Source.Port)
	}
}
