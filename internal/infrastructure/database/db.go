package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// DB agrupa el handle database/sql con su dialecto. Es el colaborador de ejecución de consultas.
type DB struct {
	SQL     *sql.DB
	Dialect Dialect

	cfg  config.DBConfig
	pool *pgxpool.Pool // solo con driver postgres
}

// Open abre la conexión según cfg.Driver y verifica que responde.
func Open(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	db := &DB{Dialect: dialect, cfg: cfg}

	switch dialect {
	case Postgres:
		pool, err := NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db.pool = pool
		db.SQL = openFromPool(pool)
	case MySQL:
		db.SQL, err = openMySQL(cfg, false)
	case SQLite:
		db.SQL, err = openSQLite(cfg.SQLitePath)
	}
	if err != nil {
		return nil, err
	}
	if err := db.SQL.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return db, nil
}

// Ping verifica que la base sigue respondiendo (health check).
func (db *DB) Ping(ctx context.Context) error {
	return db.SQL.PingContext(ctx)
}

// Close libera el handle y, con postgres, el pool subyacente.
func (db *DB) Close() error {
	err := db.SQL.Close()
	if db.pool != nil {
		db.pool.Close()
	}
	return err
}
