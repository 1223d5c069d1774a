// Package database manages the connection to the database being described.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver

	"github.com/dbsmedya/dbmeta/internal/config"
	"github.com/dbsmedya/dbmeta/internal/logger"
)

// Manager owns the source connection pool.
type Manager struct {
	Source *sql.DB
	config *config.DatabaseConfig
	logger *logger.Logger

	openDB     func(driver, dsn string) (*sql.DB, error)
	maxRetries int
	backoff    time.Duration
}

// NewManager creates a manager for cfg. A nil logger discards output.
func NewManager(cfg *config.DatabaseConfig, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{
		config:     cfg,
		logger:     log,
		openDB:     sql.Open,
		maxRetries: 3,
		backoff:    time.Second,
	}
}

// Driver returns the database/sql driver name of the configured source.
func (m *Manager) Driver() string {
	return DriverName(m.config.Driver)
}

// Connect opens and verifies the source connection.
func (m *Manager) Connect(ctx context.Context) error {
	if m.config == nil {
		return fmt.Errorf("source configuration is nil")
	}
	db, err := m.connectWithRetry(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to source database: %w", err)
	}
	m.Source = db
	return nil
}

// connectWithRetry attempts to connect with exponential backoff.
func (m *Manager) connectWithRetry(ctx context.Context) (*sql.DB, error) {
	var err error
	backoff := m.backoff

	for i := 0; i < m.maxRetries; i++ {
		var db *sql.DB
		db, err = m.connect()
		if err == nil {
			if err = db.PingContext(ctx); err == nil {
				m.logger.Infow("Connected to source database",
					"driver", m.Driver(), "host", m.config.Host, "database", m.config.Database)
				return db, nil
			}
			db.Close()
		}

		m.logger.Warnw("Connection attempt failed", "attempt", i+1, "error", err)
		if i < m.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
				backoff *= 2
			}
		}
	}

	return nil, fmt.Errorf("failed after %d retries: %w", m.maxRetries, err)
}

func (m *Manager) connect() (*sql.DB, error) {
	db, err := m.openDB(m.Driver(), BuildDSN(m.config))
	if err != nil {
		return nil, err
	}

	if m.config.MaxConnections > 0 {
		db.SetMaxOpenConns(m.config.MaxConnections)
	}
	if m.config.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(m.config.MaxIdleConnections)
	}
	db.SetConnMaxLifetime(10 * time.Minute)

	return db, nil
}

// DriverName maps a configured driver to its database/sql name.
func DriverName(driver string) string {
	if driver == config.DriverPostgres {
		return "postgres"
	}
	return "mysql"
}

// BuildDSN constructs the data source name for the configured driver.
func BuildDSN(cfg *config.DatabaseConfig) string {
	if cfg.Driver == config.DriverPostgres {
		return buildPostgresDSN(cfg)
	}
	return buildMySQLDSN(cfg)
}

// Format: user:password@tcp(host:port)/database?params
func buildMySQLDSN(cfg *config.DatabaseConfig) string {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	params := "?parseTime=true"
	switch cfg.TLS {
	case "disable":
		params += "&tls=false"
	case "required":
		params += "&tls=true"
	case "preferred", "":
		params += "&tls=preferred"
	}
	return dsn + params
}

// Format: key=value pairs understood by lib/pq.
func buildPostgresDSN(cfg *config.DatabaseConfig) string {
	sslmode := "prefer"
	switch cfg.TLS {
	case "disable":
		sslmode = "disable"
	case "required":
		sslmode = "require"
	}

	pairs := []string{
		"host=" + pqValue(cfg.Host),
		fmt.Sprintf("port=%d", cfg.Port),
		"user=" + pqValue(cfg.User),
	}
	if cfg.Password != "" {
		pairs = append(pairs, "password="+pqValue(cfg.Password))
	}
	if cfg.Database != "" {
		pairs = append(pairs, "dbname="+pqValue(cfg.Database))
	}
	pairs = append(pairs, "sslmode="+sslmode)
	return strings.Join(pairs, " ")
}

// pqValue quotes a connection parameter when it is empty or holds spaces,
// quotes or backslashes.
func pqValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}

// Close closes the source connection.
func (m *Manager) Close() error {
	if m.Source == nil {
		return nil
	}
	if err := m.Source.Close(); err != nil {
		return fmt.Errorf("source close: %w", err)
	}
	return nil
}

// Ping verifies the source connection is alive.
func (m *Manager) Ping(ctx context.Context) error {
	if m.Source == nil {
		return fmt.Errorf("source is not connected")
	}
	if err := m.Source.PingContext(ctx); err != nil {
		return fmt.Errorf("source ping failed: %w", err)
	}
	return nil
}
