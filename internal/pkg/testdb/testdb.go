// Package testdb opens migrated databases for tests: an in-memory SQLite for
// fast handler and query tests, and a throwaway PostgreSQL container for the
// repository integration suites.
package testdb

import (
	"context"
	"testing"
	"time"

	postgresadapter "meatmanager/internal/adapters/out/postgres"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite returns a fresh, migrated in-memory database with foreign keys
// enforced. The pool is capped at one connection because every connection to
// :memory: would otherwise see its own empty database. Callers must not query
// through the returned handle while a unit of work holds the transaction.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgresadapter.Migrate(db))
	return db
}

// Postgres is a running container together with a migrated GORM handle.
type Postgres struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres runs postgres:15-alpine and migrates the schema.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgresadapter.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Postgres{Container: container, DB: db}, nil
}

// Truncate empties every table between tests.
func (p *Postgres) Truncate() error {
	return p.DB.Exec("TRUNCATE TABLE order_items, orders, rounds, products, customers").Error
}

// Terminate stops the container.
func (p *Postgres) Terminate(ctx context.Context) error {
	return p.Container.Terminate(ctx)
}
