// Package extract drives a binding session over a source: it binds the root
// metadata record, fills in empty catalogs and schemas and runs the
// cross-reference pass.
package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/logger"
	"github.com/dbsmedya/dbmeta/internal/meta"
	"github.com/dbsmedya/dbmeta/internal/types"
)

// State is the lifecycle state of an extraction.
type State int

const (
	StateNew State = iota
	StateBound
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBound:
		return "BOUND"
	case StateFailed:
		return "FAILED"
	default:
		return "NEW"
	}
}

// Result is the outcome of a run. Metadata holds whatever was bound before a
// failure.
type Result struct {
	Metadata    *meta.Metadata
	Diagnostics bind.Diagnostics
	Stats       types.Stats
	State       State
}

// Extractor runs one extraction over a source.
type Extractor struct {
	src    bind.Source
	opts   Options
	logger *logger.Logger
	state  State

	synthesized int64
	crossRefs   int64
}

// New creates an extractor. A nil logger discards output.
func New(src bind.Source, opts Options, log *logger.Logger) *Extractor {
	if log == nil {
		log = logger.NewNop()
	}
	return &Extractor{src: src, opts: opts, logger: log}
}

// State returns the extractor's lifecycle state.
func (e *Extractor) State() State {
	return e.state
}

// Run is a convenience function that creates an extractor and runs it.
func Run(ctx context.Context, src bind.Source, opts Options, log *logger.Logger) (*Result, error) {
	return New(src, opts, log).Run(ctx)
}

// Run binds the whole metadata graph. Diagnostics never fail a run; fatal
// source errors and strict-mode aborts do, and leave the extractor FAILED.
func (e *Extractor) Run(ctx context.Context) (*Result, error) {
	if e.state != StateNew {
		return nil, fmt.Errorf("extractor already ran (state %s)", e.state)
	}

	start := time.Now()
	res := &Result{Metadata: &meta.Metadata{}}

	if err := e.opts.CrossReferences.Validate(); err != nil {
		return e.fail(res, nil, start, err)
	}

	sess, err := bind.NewSession(e.src, e.opts.Binding, e.logger)
	if err != nil {
		return e.fail(res, nil, start, fmt.Errorf("failed to start binding session: %w", err))
	}

	e.logger.Infow("Starting metadata extraction",
		"cross_references", e.opts.CrossReferences,
		"suppressions", sess.Suppressions().Len())

	if err := sess.Expand(ctx, meta.MetadataDescriptor, res.Metadata); err != nil {
		return e.fail(res, sess, start, fmt.Errorf("failed to bind metadata: %w", err))
	}
	if err := e.synthesize(ctx, sess, res.Metadata); err != nil {
		return e.fail(res, sess, start, fmt.Errorf("failed to synthesize catalogs: %w", err))
	}
	if err := e.crossReferences(ctx, sess, res.Metadata); err != nil {
		return e.fail(res, sess, start, fmt.Errorf("failed to bind cross references: %w", err))
	}

	e.state = StateBound
	e.finish(res, sess, start)

	e.logger.Infow("Metadata extraction completed",
		"catalogs", len(res.Metadata.Catalogs),
		"tables", len(res.Metadata.Tables()),
		"diagnostics", len(res.Diagnostics),
		"records", res.Stats.RecordsBound,
		"duration", res.Stats.Duration)
	return res, nil
}

func (e *Extractor) fail(res *Result, sess *bind.Session, start time.Time, err error) (*Result, error) {
	e.state = StateFailed
	e.finish(res, sess, start)
	e.logger.Errorw("Metadata extraction failed", "error", err)
	return res, err
}

func (e *Extractor) finish(res *Result, sess *bind.Session, start time.Time) {
	res.State = e.state
	if sess != nil {
		res.Diagnostics = sess.Diagnostics()
		res.Stats = sess.Stats()
	}
	res.Stats.Synthesized = e.synthesized
	res.Stats.CrossReferenceCalls = e.crossRefs
	res.Stats.Duration = time.Since(start)
}

// synthesize gives catalog-less sources one unnamed catalog and schema-less
// catalogs one unnamed schema, so every table hangs off a schema.
func (e *Extractor) synthesize(ctx context.Context, sess *bind.Session, m *meta.Metadata) error {
	opts := sess.Options()

	if len(m.Catalogs) == 0 && opts.SynthesizeEmptyCatalog && !sess.Suppressed(meta.PathMetadataCatalogs) {
		row := bind.NewRow([]string{"TABLE_CAT"}, []any{""})
		cat := &meta.Catalog{}
		if err := sess.Bind(ctx, meta.CatalogDescriptor, row, cat); err != nil {
			return err
		}
		cat.SetParent(bind.RefOf(meta.MetadataDescriptor, m))
		m.Catalogs = append(m.Catalogs, cat)
		e.synthesized++
		e.logger.WithDescriptor(meta.CatalogDescriptor.Name).Debugw("Synthesized empty catalog")
	}

	if !opts.SynthesizeEmptySchema || sess.Suppressed(meta.PathCatalogSchemas) {
		return nil
	}
	for _, cat := range m.Catalogs {
		if len(cat.Schemas) > 0 {
			continue
		}
		row := bind.NewRow([]string{"TABLE_SCHEM", "TABLE_CATALOG"}, []any{"", cat.TableCat})
		schema := &meta.Schema{}
		if err := sess.Bind(ctx, meta.SchemaDescriptor, row, schema); err != nil {
			return err
		}
		schema.SetParent(bind.RefOf(meta.CatalogDescriptor, cat))
		cat.Schemas = append(cat.Schemas, schema)
		e.synthesized++
		e.logger.WithDescriptor(meta.SchemaDescriptor.Name).Debugw("Synthesized empty schema", "catalog", cat.TableCat)
	}
	return nil
}

func (e *Extractor) crossReferences(ctx context.Context, sess *bind.Session, m *meta.Metadata) error {
	switch e.opts.CrossReferences {
	case ScopeNone:
		return nil
	case ScopeRun:
		if sess.Suppressed(meta.PathMetadataCrossReferences) {
			return nil
		}
		refs, err := e.pairTables(ctx, sess, m.Tables(), meta.PathMetadataCrossReferences, meta.MetadataDescriptor, m)
		if err != nil {
			return err
		}
		m.CrossReferences = append(m.CrossReferences, refs...)
		return nil
	case ScopeSchema, "":
		if sess.Suppressed(meta.PathSchemaCrossReferences) {
			return nil
		}
		for _, schema := range m.Schemas() {
			refs, err := e.pairTables(ctx, sess, schema.Tables, meta.PathSchemaCrossReferences, meta.SchemaDescriptor, schema)
			if err != nil {
				return err
			}
			schema.CrossReferences = append(schema.CrossReferences, refs...)
		}
		return nil
	default:
		return e.opts.CrossReferences.Validate()
	}
}

// pairTables calls getCrossReference for every ordered pair of tables.
func (e *Extractor) pairTables(ctx context.Context, sess *bind.Session, tables []*meta.Table, path string, parentType *bind.Type, parent any) ([]*meta.CrossReference, error) {
	var out []*meta.CrossReference
	for _, pk := range tables {
		for _, fk := range tables {
			if e.opts.SkipSelfReferences && pk == fk {
				continue
			}
			e.crossRefs++
			recs, err := sess.Query(ctx, bind.Request{
				Path:      path,
				Type:      meta.CrossReferenceDescriptor,
				Operation: meta.OpGetCrossReference,
				Args: []any{
					meta.Deref(pk.TableCat), meta.Deref(pk.TableSchem), pk.TableName,
					meta.Deref(fk.TableCat), meta.Deref(fk.TableSchem), fk.TableName,
				},
				ParentType: parentType,
				Parent:     parent,
			})
			if err != nil {
				return out, err
			}
			for _, r := range recs {
				out = append(out, r.(*meta.CrossReference))
			}
		}
	}
	return out, nil
}
