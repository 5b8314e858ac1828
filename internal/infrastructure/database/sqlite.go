package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// openSQLite abre una base SQLite en path con claves foráneas activas.
func openSQLite(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	return db, nil
}
