package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jhoicas/tienda-api/internal/infrastructure/database/migrations"
)

// Migrate aplica las migraciones embebidas pendientes del dialecto activo.
// Sin cambios pendientes no es un error.
func (db *DB) Migrate() error {
	src, err := iofs.New(migrations.FS, db.Dialect.String())
	if err != nil {
		return fmt.Errorf("migraciones embebidas: %w", err)
	}

	var driver migratedb.Driver
	switch db.Dialect {
	case Postgres:
		driver, err = migratepgx.WithInstance(db.SQL, &migratepgx.Config{})
	case SQLite:
		driver, err = migratesqlite.WithInstance(db.SQL, &migratesqlite.Config{})
	case MySQL:
		// El driver de MySQL necesita multiStatements; se usa una conexión aparte que se cierra al terminar.
		var conn *sql.DB
		conn, err = openMySQL(db.cfg, true)
		if err != nil {
			return err
		}
		defer conn.Close()
		driver, err = migratemysql.WithInstance(conn, &migratemysql.Config{})
	}
	if err != nil {
		return fmt.Errorf("driver de migración %s: %w", db.Dialect, err)
	}

	// m.Close() no se llama: cerraría el *sql.DB compartido con los repositorios.
	m, err := migrate.NewWithInstance("iofs", src, db.Dialect.String(), driver)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
