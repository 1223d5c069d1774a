// Package source answers metadata operations from a live database through
// database/sql. Each supported driver has a Dialect that maps operation names
// onto catalog queries or scalar probes.
package source

import (
	"context"
	"database/sql"
	"fmt"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/config"
	"github.com/dbsmedya/dbmeta/internal/logger"
	"github.com/dbsmedya/dbmeta/internal/sqlutil"
)

// Querier is the part of *sql.DB the source needs.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// param computes one query parameter from the operation arguments.
type param func(args []any) any

// arg passes operation argument i through unchanged.
func arg(i int) param {
	return func(args []any) any {
		if i < len(args) {
			return args[i]
		}
		return nil
	}
}

// like passes argument i as a LIKE pattern; null matches everything.
func like(i int) param {
	return func(args []any) any {
		return sqlutil.Pattern(arg(i)(args))
	}
}

// Query is a tabular operation: SQL text with ? placeholders and the
// parameters bound to them in order.
type Query struct {
	SQL    string
	Params []param
}

func query(text string, params ...param) Query {
	return Query{SQL: strings.TrimSpace(text), Params: params}
}

// ScalarFunc answers a scalar operation.
type ScalarFunc func(ctx context.Context, q Querier, args []any) (any, error)

// Dialect describes how one database answers metadata operations.
type Dialect struct {
	Name string
	// Rebind rewrites ? placeholders for drivers that number them.
	Rebind  func(string) string
	Queries map[string]Query
	Scalars map[string]ScalarFunc
}

// Supports reports whether op is answered by the dialect.
func (d *Dialect) Supports(op string) bool {
	if _, ok := d.Queries[op]; ok {
		return true
	}
	_, ok := d.Scalars[op]
	return ok
}

// Operations returns the supported operation names in sorted order.
func (d *Dialect) Operations() []string {
	ops := make([]string, 0, len(d.Queries)+len(d.Scalars))
	for op := range d.Queries {
		ops = append(ops, op)
	}
	for op := range d.Scalars {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Text returns the driver-ready SQL of a query.
func (d *Dialect) Text(q Query) string {
	if d.Rebind != nil {
		return d.Rebind(q.SQL)
	}
	return q.SQL
}

// Drivers lists the configured driver names a dialect exists for.
func Drivers() []string {
	return []string{config.DriverMySQL, config.DriverPostgres}
}

// ForDriver returns the dialect of a configured driver.
func ForDriver(driver string) (*Dialect, error) {
	switch driver {
	case config.DriverMySQL:
		return MySQL(), nil
	case config.DriverPostgres:
		return Postgres(), nil
	}
	return nil, fmt.Errorf("no metadata dialect for driver %q", driver)
}

// SQL is a bind.Source backed by a database connection.
type SQL struct {
	db      Querier
	dialect *Dialect
	logger  *logger.Logger
}

// New creates a source over db. A nil logger discards output.
func New(db Querier, dialect *Dialect, log *logger.Logger) *SQL {
	if log == nil {
		log = logger.NewNop()
	}
	return &SQL{db: db, dialect: dialect, logger: log}
}

// Dialect returns the dialect the source speaks.
func (s *SQL) Dialect() *Dialect {
	return s.dialect
}

// Invoke runs op. Operations the dialect does not know wrap
// bind.ErrUnsupportedOperation.
func (s *SQL) Invoke(ctx context.Context, op string, args ...any) (bind.Result, error) {
	if q, ok := s.dialect.Queries[op]; ok {
		params := make([]any, len(q.Params))
		for i, p := range q.Params {
			params[i] = p(args)
		}
		s.logger.Debugw("Running metadata query", "operation", op, "dialect", s.dialect.Name, "params", params)
		rows, err := s.db.QueryContext(ctx, s.dialect.Text(q), params...)
		if err != nil {
			return bind.Result{}, fmt.Errorf("%s: %w", op, err)
		}
		return bind.Tabular(rows), nil
	}

	if f, ok := s.dialect.Scalars[op]; ok {
		v, err := f(ctx, s.db, args)
		if err != nil {
			return bind.Result{}, fmt.Errorf("%s: %w", op, err)
		}
		return bind.Scalar(v), nil
	}

	return bind.Result{}, fmt.Errorf("%s: %w", op, bind.ErrUnsupportedOperation)
}

// constant answers with v regardless of arguments.
func constant(v any) ScalarFunc {
	return func(context.Context, Querier, []any) (any, error) {
		return v, nil
	}
}

// queryValue answers with the single value selected by text.
func queryValue(text string) ScalarFunc {
	return func(ctx context.Context, q Querier, _ []any) (any, error) {
		var v any
		if err := q.QueryRowContext(ctx, text).Scan(&v); err != nil {
			return nil, err
		}
		if b, ok := v.([]byte); ok {
			return string(b), nil
		}
		return v, nil
	}
}

// versionPart answers with component idx of the dotted version selected by
// text, e.g. 8 and 0 for "8.0.36-log".
func versionPart(text string, idx int) ScalarFunc {
	get := queryValue(text)
	return func(ctx context.Context, q Querier, args []any) (any, error) {
		v, err := get(ctx, q, args)
		if err != nil {
			return nil, err
		}
		return parseVersion(cast.ToString(v), idx)
	}
}

func parseVersion(version string, idx int) (int32, error) {
	end := strings.IndexFunc(version, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	})
	if end >= 0 {
		version = version[:end]
	}
	parts := strings.Split(version, ".")
	if idx >= len(parts) || parts[idx] == "" {
		return 0, nil
	}
	return cast.ToInt32E(parts[idx])
}

// predicate tests the operation arguments.
type predicate func(args []any) bool

// in matches when argument i is one of values.
func in(i int, values ...int32) predicate {
	return func(args []any) bool {
		if i >= len(args) {
			return false
		}
		n, err := cast.ToInt32E(args[i])
		if err != nil {
			return false
		}
		for _, v := range values {
			if n == v {
				return true
			}
		}
		return false
	}
}

// all answers true when every predicate matches.
func all(preds ...predicate) ScalarFunc {
	return func(_ context.Context, _ Querier, args []any) (any, error) {
		for _, p := range preds {
			if !p(args) {
				return false, nil
			}
		}
		return true, nil
	}
}

// conversion is a supported (from, to) type code pair.
type conversion [2]int32

// convert answers supportsConvert: with no arguments whether any conversion
// is supported, otherwise whether the given pair is.
func convert(pairs ...conversion) ScalarFunc {
	set := make(map[conversion]bool, len(pairs))
	for _, p := range pairs {
		set[p] = true
	}
	return func(_ context.Context, _ Querier, args []any) (any, error) {
		if len(args) < 2 {
			return len(set) > 0, nil
		}
		from, err := cast.ToInt32E(args[0])
		if err != nil {
			return false, nil
		}
		to, err := cast.ToInt32E(args[1])
		if err != nil {
			return false, nil
		}
		return set[conversion{from, to}], nil
	}
}

// moduleVersion reports the version of a module linked into the binary.
func moduleVersion(path string) ScalarFunc {
	return func(context.Context, Querier, []any) (any, error) {
		return linkedVersion(path), nil
	}
}

func linkedVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return "unknown"
}
