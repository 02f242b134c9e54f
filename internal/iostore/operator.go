// Package iostore loads converted JSON-LD documents into a document
// store, either PostgreSQL or a local SQLite file.
package iostore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/config"
)

// Operator manages the PostgreSQL connection pool of the document
// store.
type Operator struct {
	pool *pgxpool.Pool
}

// New creates a new database operator (without connecting).
func New() *Operator {
	return &Operator{}
}

// Connect establishes a connection pool to PostgreSQL.
// Uses sensible hardcoded pool settings that work well for
// most use cases.
func (o *Operator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// Hardcoded pool settings (can be made configurable
	// later if needed)
	poolConfig.MaxConns = 10       // Max connections
	poolConfig.MinConns = 2        // Keep 2 connections warm
	poolConfig.MaxConnLifetime = 0 // No lifetime limit
	poolConfig.MaxConnIdleTime = 0 // No idle timeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	o.pool = pool
	return nil
}

// Close releases all database connections.
func (o *Operator) Close() error {
	if o.pool != nil {
		o.pool.Close()
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool for advanced operations.
func (o *Operator) Pool() *pgxpool.Pool {
	return o.pool
}

// HasTables checks if the database has any tables in the public
// schema.
func (o *Operator) HasTables(ctx context.Context) (bool, error) {
	if o.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
		)
	`

	var hasTables bool
	err := o.pool.QueryRow(ctx, query).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

// DropAllTables drops all tables in the public schema.
func (o *Operator) DropAllTables(ctx context.Context) error {
	if o.pool == nil {
		return NotConnectedError()
	}

	query := `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
	`

	rows, err := o.pool.Query(ctx, query)
	if err != nil {
		return TableCheckError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return TableCheckError(err)
		}
		tables = append(tables, tableName)
	}

	if err := rows.Err(); err != nil {
		return TableCheckError(err)
	}

	for _, table := range tables {
		dropSQL := fmt.Sprintf(
			"DROP TABLE IF EXISTS %s CASCADE", table)
		if _, err := o.pool.Exec(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}
