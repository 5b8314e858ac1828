package database

import (
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// mysqlConfig arma la configuración del driver. parseTime es obligatorio para leer `Fecha` como time.Time.
// multiStatements solo se activa en la conexión que aplica migraciones.
func mysqlConfig(cfg config.DBConfig, multiStatements bool) (*mysql.Config, error) {
	var c *mysql.Config
	if cfg.DatabaseURL != "" {
		parsed, err := mysql.ParseDSN(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse DSN mysql: %w", err)
		}
		c = parsed
	} else {
		c = mysql.NewConfig()
		c.User = cfg.User
		c.Passwd = cfg.Password
		c.Net = "tcp"
		c.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		c.DBName = cfg.DBName
	}
	c.ParseTime = true
	c.Loc = time.UTC
	c.Collation = "utf8mb4_unicode_ci"
	c.MultiStatements = multiStatements
	return c, nil
}

func openMySQL(cfg config.DBConfig, multiStatements bool) (*sql.DB, error) {
	c, err := mysqlConfig(cfg, multiStatements)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(c)
	if err != nil {
		return nil, fmt.Errorf("conector mysql: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	return db, nil
}
