package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/config"
	"github.com/dbsmedya/dbmeta/internal/database"
	"github.com/dbsmedya/dbmeta/internal/logger"
	"github.com/dbsmedya/dbmeta/internal/meta"
	"github.com/dbsmedya/dbmeta/internal/report"
	"github.com/dbsmedya/dbmeta/internal/source"
)

var validateOffline bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and run preflight checks",
	Long: `Validate checks the configuration file and runs preflight checks
against the source before an extraction.

Checks performed:
  - Configuration syntax and required fields
  - Suppression paths naming a known type and field
  - Operations the source dialect cannot serve
  - Database connectivity and server identification

Example:
  dbmeta validate --config dbmeta.yaml
  dbmeta validate --config dbmeta.yaml --offline`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateOffline, "offline", false,
		"Skip the connectivity check")

	rootCmd.AddCommand(validateCmd)
}

// operationStatus is the preflight view of one source operation.
type operationStatus struct {
	Operation  string
	Paths      []string
	Supported  bool
	Suppressed bool // every path invoking the operation is suppressed
}

// operationStatuses checks every operation an extraction may invoke against
// dialect. The cross-reference operation is included unless the scope is
// none.
func operationStatuses(dialect *source.Dialect, binding config.BindingConfig) []operationStatus {
	sup := bind.NewSuppressions(binding.Suppressions...)
	ops := meta.OperationPaths()

	switch binding.CrossReferences {
	case config.CrossReferencesRun:
		ops.Set(meta.OpGetCrossReference, []string{meta.PathMetadataCrossReferences})
	case config.CrossReferencesNone:
	default:
		ops.Set(meta.OpGetCrossReference, []string{meta.PathSchemaCrossReferences})
	}

	out := make([]operationStatus, 0, ops.Len())
	for el := ops.Front(); el != nil; el = el.Next() {
		suppressed := true
		for _, p := range el.Value {
			if !sup.IsSuppressed(p) {
				suppressed = false
				break
			}
		}
		out = append(out, operationStatus{
			Operation:  el.Key,
			Paths:      el.Value,
			Supported:  dialect.Supports(el.Key),
			Suppressed: suppressed,
		})
	}
	return out
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, err := loadConfig(configFile, GetCLIOverrides())
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	dialect, err := source.ForDriver(cfg.Source.Driver)
	if err != nil {
		return err
	}

	p := report.New(outputWriter, false)
	p.Header("Configuration Validation")
	fmt.Fprintf(outputWriter, "Config file: %s\n", configFile)
	fmt.Fprintf(outputWriter, "Source: %s\n\n", describeSource(cfg.Source))

	hasErrors := false

	p.Section("Suppressions")
	unknown := 0
	for _, path := range cfg.Binding.Suppressions {
		if !meta.KnownPath(path) {
			fmt.Fprintf(outputWriter, "⚠️  %s names no known type/field\n", path)
			unknown++
		}
	}
	fmt.Fprintf(outputWriter, "%d paths, %d unknown\n\n", len(cfg.Binding.Suppressions), unknown)

	p.Section("Operations (" + dialect.Name + ")")
	supported, skipped := 0, 0
	for _, st := range operationStatuses(dialect, cfg.Binding) {
		switch {
		case st.Supported:
			supported++
		case st.Suppressed:
			skipped++
		case cfg.Binding.FailOnUnknownOperation:
			fmt.Fprintf(outputWriter, "❌ %s unsupported, used by %s\n", st.Operation, strings.Join(st.Paths, ", "))
			hasErrors = true
		default:
			fmt.Fprintf(outputWriter, "⚠️  %s unsupported, used by %s\n", st.Operation, strings.Join(st.Paths, ", "))
		}
	}
	fmt.Fprintf(outputWriter, "%d supported, %d unsupported but suppressed\n\n", supported, skipped)

	if !validateOffline {
		p.Section("Connectivity")
		if err := checkConnectivity(cfg, dialect, log); err != nil {
			fmt.Fprintf(outputWriter, "❌ %v\n\n", err)
			hasErrors = true
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	fmt.Fprintln(outputWriter, "=== Validation Complete ===")
	fmt.Fprintln(outputWriter, "✅ Configuration is ready for extraction")
	return nil
}

// checkConnectivity connects to the source and prints the server product and
// version as the dialect reports them.
func checkConnectivity(cfg *config.Config, dialect *source.Dialect, log *logger.Logger) error {
	ctx := context.Background()

	dbManager := database.NewManager(&cfg.Source, log)
	if err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Ping(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	src := source.New(dbManager.Source, dialect, log)
	product, err := scalarString(ctx, src, meta.OpGetDatabaseProductName)
	if err != nil {
		return err
	}
	version, err := scalarString(ctx, src, meta.OpGetDatabaseProductVersion)
	if err != nil {
		return err
	}
	fmt.Fprintf(outputWriter, "✅ Connected to %s %s\n\n", product, version)
	return nil
}

func scalarString(ctx context.Context, src bind.Source, op string) (string, error) {
	res, err := src.Invoke(ctx, op)
	if err != nil {
		return "", err
	}
	if res.Tabular() {
		res.Rows.Close()
		return "", fmt.Errorf("%s: expected a scalar result", op)
	}
	return fmt.Sprint(res.Value), nil
}
