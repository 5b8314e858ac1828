package database

import (
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/pkg/config"
)

func TestRebind(t *testing.T) {
	const q = "SELECT `Tipo de pago` FROM `Metodo de pago` WHERE `ID_Metodo` = ? AND `Tipo de pago` <> 'a?`b' AND 1 = ?"

	assert.Equal(t, q, MySQL.Rebind(q))
	assert.Equal(t,
		`SELECT "Tipo de pago" FROM "Metodo de pago" WHERE "ID_Metodo" = $1 AND "Tipo de pago" <> 'a?`+"`"+`b' AND 1 = $2`,
		Postgres.Rebind(q))
	assert.Equal(t,
		`SELECT "Tipo de pago" FROM "Metodo de pago" WHERE "ID_Metodo" = ? AND "Tipo de pago" <> 'a?`+"`"+`b' AND 1 = ?`,
		SQLite.Rebind(q))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "`Metodo de pago`", MySQL.Quote("Metodo de pago"))
	assert.Equal(t, `"Metodo de pago"`, Postgres.Quote("Metodo de pago"))
	assert.Equal(t, `"a""b"`, SQLite.Quote(`a"b`))
	assert.Equal(t, "`a``b`", MySQL.Quote("a`b"))
}

func TestDialectFor(t *testing.T) {
	d, err := DialectFor(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)
	assert.Equal(t, config.DriverPostgres, d.String())

	_, err = DialectFor("oracle")
	assert.Error(t, err)
}

func TestMySQLConfig_DesdeCampos(t *testing.T) {
	c, err := mysqlConfig(config.DBConfig{
		Host: "db", Port: 3306, User: "app", Password: "p@ss", DBName: "tienda",
	}, false)
	require.NoError(t, err)

	assert.Equal(t, "tcp", c.Net)
	assert.Equal(t, "db:3306", c.Addr)
	assert.Equal(t, "tienda", c.DBName)
	assert.True(t, c.ParseTime)
	assert.False(t, c.MultiStatements)
	assert.Contains(t, c.FormatDSN(), "parseTime=true")
}

func TestMySQLConfig_DesdeURL(t *testing.T) {
	c, err := mysqlConfig(config.DBConfig{DatabaseURL: "app:secret@tcp(mysql:3307)/ventas"}, true)
	require.NoError(t, err)

	assert.Equal(t, "mysql:3307", c.Addr)
	assert.Equal(t, "ventas", c.DBName)
	assert.True(t, c.ParseTime)
	assert.True(t, c.MultiStatements)

	_, err = mysqlConfig(config.DBConfig{DatabaseURL: "::no es un dsn::"}, false)
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062})))
	assert.False(t, isUniqueViolation(&mysql.MySQLError{Number: 1452}))
	assert.False(t, isUniqueViolation(fmt.Errorf("otro")))
}
