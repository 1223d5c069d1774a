package extract

import (
	"fmt"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/config"
)

// Scope selects which tables are paired in the cross-reference pass.
type Scope string

const (
	// ScopeSchema pairs the tables of each schema and attaches the keys to
	// the schema.
	ScopeSchema Scope = config.CrossReferencesSchema
	// ScopeRun pairs every table of the run and attaches the keys to the
	// root.
	ScopeRun Scope = config.CrossReferencesRun
	// ScopeNone skips the pass.
	ScopeNone Scope = config.CrossReferencesNone
)

// Validate rejects scopes other than schema, run and none. Empty means schema.
func (s Scope) Validate() error {
	switch s {
	case ScopeSchema, ScopeRun, ScopeNone, "":
		return nil
	}
	return fmt.Errorf("unknown cross reference scope %q", string(s))
}

// Options configure one extraction run.
type Options struct {
	Binding            bind.Options
	CrossReferences    Scope
	SkipSelfReferences bool
}

// DefaultOptions pairs tables per schema, self pairs included.
func DefaultOptions() Options {
	return Options{
		Binding:         bind.DefaultOptions(),
		CrossReferences: ScopeSchema,
	}
}

// OptionsFromConfig maps the binding section of the configuration.
func OptionsFromConfig(cfg config.BindingConfig) Options {
	scope := Scope(cfg.CrossReferences)
	if scope == "" {
		scope = ScopeSchema
	}
	return Options{
		Binding: bind.Options{
			Suppressions:           append([]string(nil), cfg.Suppressions...),
			SynthesizeEmptyCatalog: cfg.SynthesizeEmptyCatalog,
			SynthesizeEmptySchema:  cfg.SynthesizeEmptySchema,
			FailOnUnknownColumn:    cfg.FailOnUnknownColumn,
			FailOnUnknownOperation: cfg.FailOnUnknownOperation,
		},
		CrossReferences:    scope,
		SkipSelfReferences: cfg.SkipSelfReferences,
	}
}
