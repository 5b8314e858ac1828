package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-api/pkg/config"
)

// Dialect concentra las diferencias de SQL entre motores: comillas de identificadores y placeholders.
//
// Las consultas se escriben una sola vez en la forma de MySQL (identificadores entre backticks,
// placeholders "?") porque el esquema usa nombres con espacios como `Metodo de pago`.
// Rebind las traduce al motor real justo antes de ejecutarlas.
type Dialect int

const (
	MySQL Dialect = iota
	Postgres
	SQLite
)

// DialectFor devuelve el dialecto de un driver configurado (config.DriverXxx).
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverMySQL:
		return MySQL, nil
	case config.DriverPostgres:
		return Postgres, nil
	case config.DriverSQLite:
		return SQLite, nil
	}
	return 0, fmt.Errorf("database: driver no soportado %q", driver)
}

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return config.DriverPostgres
	case SQLite:
		return config.DriverSQLite
	default:
		return config.DriverMySQL
	}
}

// Quote encierra un identificador del esquema con las comillas del motor.
// Nunca debe recibir valores que vengan del cliente.
func (d Dialect) Quote(ident string) string {
	if d == MySQL {
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Rebind traduce una consulta escrita en forma MySQL al dialecto d:
// backticks -> comillas dobles (Postgres, SQLite) y "?" -> $1..$n (Postgres).
// El contenido de literales '...' no se toca.
func (d Dialect) Rebind(query string) string {
	if d == MySQL {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inLiteral := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inLiteral = !inLiteral
			b.WriteByte(ch)
		case inLiteral:
			b.WriteByte(ch)
		case ch == '`':
			b.WriteByte('"')
		case ch == '?' && d == Postgres:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// supportsReturning indica si el INSERT debe devolver el ID con RETURNING en lugar de LastInsertId.
func (d Dialect) supportsReturning() bool {
	return d == Postgres
}
