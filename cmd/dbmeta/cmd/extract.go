package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/dbmeta/internal/bind"
	"github.com/dbsmedya/dbmeta/internal/config"
	"github.com/dbsmedya/dbmeta/internal/database"
	"github.com/dbsmedya/dbmeta/internal/export"
	"github.com/dbsmedya/dbmeta/internal/extract"
	"github.com/dbsmedya/dbmeta/internal/logger"
	"github.com/dbsmedya/dbmeta/internal/report"
	"github.com/dbsmedya/dbmeta/internal/source"
)

var extractNoSummary bool

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract database metadata into a YAML or JSON document",
	Long: `Extract connects to the configured source, binds the whole metadata
graph and writes it as a document.

The extraction follows these steps:
  1. Bind the root metadata record and its capability facts
  2. Expand catalogs, schemas, tables and their per-table collections
  3. Synthesize an unnamed catalog or schema where the source has none
  4. Pair tables and bind their cross references
  5. Write the document and print a run summary to stderr

Example:
  dbmeta extract --config dbmeta.yaml --output shop.yaml
  dbmeta extract -c dbmeta.yaml -f json -s table/indexInfo -s table/columnPrivileges`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractNoSummary, "no-summary", false,
		"Do not print the run summary")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(GetConfigFile(), GetCLIOverrides())
	if err != nil {
		return err
	}
	if extractNoSummary {
		cfg.Output.Summary = false
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

	ctx, stop := database.SignalContext(context.Background(), func(sig os.Signal) {
		log.Warnw("Received shutdown signal, abandoning extraction", "signal", sig.String())
	})
	defer stop()

	dbManager := database.NewManager(&cfg.Source, log)
	if err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbManager.Close()

	log = log.WithFields(map[string]interface{}{
		"driver":   cfg.Source.Driver,
		"database": cfg.Source.Database,
	})
	log.Infow("Connected to source", "config", GetConfigFile())

	return extractFrom(ctx, source.New(dbManager.Source, dialect, log), cfg, log, time.Now)
}

// extractFrom runs an extraction over src and writes the document and the
// summary the configuration asks for.
func extractFrom(ctx context.Context, src bind.Source, cfg *config.Config, log *logger.Logger, now func() time.Time) error {
	res, runErr := extract.Run(ctx, src, extract.OptionsFromConfig(cfg.Binding), log)
	if res != nil && cfg.Output.Summary {
		report.New(errWriter, color.SupportColor()).Summary(res, describeSource(cfg.Source))
	}
	if runErr != nil {
		if ctx.Err() != nil {
			log.Warn("Extraction cancelled")
		}
		return fmt.Errorf("extraction failed: %w", runErr)
	}

	doc := export.NewDocument(res, export.SourceInfo{
		Driver:   cfg.Source.Driver,
		Host:     cfg.Source.Host,
		Port:     cfg.Source.Port,
		Database: cfg.Source.Database,
	}, now())

	if cfg.Output.Path == "" || cfg.Output.Path == export.Stdout {
		return export.Write(outputWriter, cfg.Output.Format, doc)
	}
	if err := export.WriteFile(cfg.Output.Path, cfg.Output.Format, doc); err != nil {
		return err
	}
	log.Infow("Metadata written", "path", cfg.Output.Path, "format", cfg.Output.Format)
	return nil
}
