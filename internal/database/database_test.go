package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/dbmeta/internal/config"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.DatabaseConfig
		expected string
	}{
		{
			name: "mysql basic",
			cfg: &config.DatabaseConfig{
				Driver: config.DriverMySQL, Host: "localhost", Port: 3306,
				User: "root", Password: "secret", Database: "shop", TLS: "preferred",
			},
			expected: "root:secret@tcp(localhost:3306)/shop?parseTime=true&tls=preferred",
		},
		{
			name: "mysql without database",
			cfg: &config.DatabaseConfig{
				Host: "localhost", Port: 3306, User: "root", Password: "secret",
			},
			expected: "root:secret@tcp(localhost:3306)/?parseTime=true&tls=preferred",
		},
		{
			name: "mysql tls disabled",
			cfg: &config.DatabaseConfig{
				Driver: config.DriverMySQL, Host: "db", Port: 3307,
				User: "admin", Password: "p@ss", Database: "crm", TLS: "disable",
			},
			expected: "admin:p@ss@tcp(db:3307)/crm?parseTime=true&tls=false",
		},
		{
			name: "mysql tls required",
			cfg: &config.DatabaseConfig{
				Driver: config.DriverMySQL, Host: "db", Port: 3306,
				User: "u", Password: "p", Database: "d", TLS: "required",
			},
			expected: "u:p@tcp(db:3306)/d?parseTime=true&tls=true",
		},
		{
			name: "postgres basic",
			cfg: &config.DatabaseConfig{
				Driver: config.DriverPostgres, Host: "localhost", Port: 5432,
				User: "postgres", Password: "secret", Database: "shop", TLS: "preferred",
			},
			expected: "host=localhost port=5432 user=postgres password=secret dbname=shop sslmode=prefer",
		},
		{
			name: "postgres quoting",
			cfg: &config.DatabaseConfig{
				Driver: config.DriverPostgres, Host: "pg", Port: 5433,
				User: "app", Password: `it's a \secret`, Database: "crm", TLS: "required",
			},
			expected: `host=pg port=5433 user=app password='it\'s a \\secret' dbname=crm sslmode=require`,
		},
		{
			name: "postgres without password or database",
			cfg: &config.DatabaseConfig{
				Driver: config.DriverPostgres, Host: "pg", Port: 5432, User: "app", TLS: "disable",
			},
			expected: "host=pg port=5432 user=app sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDSN(tt.cfg))
		})
	}
}

func TestDriverName(t *testing.T) {
	assert.Equal(t, "mysql", DriverName(config.DriverMySQL))
	assert.Equal(t, "mysql", DriverName(""))
	assert.Equal(t, "postgres", DriverName(config.DriverPostgres))
}

func TestNewManager(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: config.DriverPostgres, Host: "pg"}
	m := NewManager(cfg, nil)

	require.NotNil(t, m)
	assert.Same(t, cfg, m.config)
	assert.Nil(t, m.Source)
	assert.Equal(t, "postgres", m.Driver())
	assert.NoError(t, m.Close(), "close before connect")
	assert.Error(t, m.Ping(context.Background()), "ping before connect")
}

func mockManager(t *testing.T, cfg *config.DatabaseConfig) (*Manager, sqlmock.Sqlmock, *[]string) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	var opened []string
	m := NewManager(cfg, nil)
	m.backoff = time.Millisecond
	m.openDB = func(driver, dsn string) (*sql.DB, error) {
		opened = append(opened, driver+" "+dsn)
		return db, nil
	}
	return m, mock, &opened
}

func TestConnect(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: config.DriverMySQL, Host: "localhost", Port: 3306, User: "root",
		MaxConnections: 1, MaxIdleConnections: 1,
	}
	m, mock, opened := mockManager(t, cfg)
	mock.ExpectPing()
	mock.ExpectPing()
	mock.ExpectClose()

	require.NoError(t, m.Connect(context.Background()))
	require.NotNil(t, m.Source)
	assert.Equal(t, []string{"mysql root:@tcp(localhost:3306)/?parseTime=true&tls=preferred"}, *opened)
	assert.NoError(t, m.Ping(context.Background()))
	assert.NoError(t, m.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnect_RetriesThenFails(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: config.DriverPostgres, Host: "pg", Port: 5432, User: "app"}
	m := NewManager(cfg, nil)
	m.maxRetries = 2
	m.backoff = time.Millisecond

	pingErr := errors.New("connection refused")
	var mocks []sqlmock.Sqlmock
	m.openDB = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "postgres", driver)
		assert.Equal(t, "host=pg port=5432 user=app sslmode=prefer", dsn)
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		mock.ExpectPing().WillReturnError(pingErr)
		mock.ExpectClose()
		mocks = append(mocks, mock)
		return db, nil
	}

	err := m.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, pingErr)
	assert.Contains(t, err.Error(), "failed after 2 retries")
	assert.Len(t, mocks, 2)
	assert.Nil(t, m.Source)
	for _, mock := range mocks {
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestConnect_OpenError(t *testing.T) {
	m := NewManager(&config.DatabaseConfig{}, nil)
	m.maxRetries = 1
	m.openDB = func(string, string) (*sql.DB, error) { return nil, errors.New("bad dsn") }

	err := m.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad dsn")
}

func TestConnect_ContextCancelledDuringBackoff(t *testing.T) {
	m := NewManager(&config.DatabaseConfig{}, nil)
	m.backoff = time.Hour
	m.openDB = func(string, string) (*sql.DB, error) { return nil, errors.New("down") }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Connect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnect_NilConfig(t *testing.T) {
	assert.Error(t, NewManager(nil, nil).Connect(context.Background()))
}
