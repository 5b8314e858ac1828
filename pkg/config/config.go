package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de base de datos soportados.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Drivers del almacén de sesiones.
const (
	SessionRedis = "redis"
	SessionJWT   = "jwt"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	Session SessionConfig
	Redis   RedisConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
	// DebugErrors incluye el texto del error interno en las respuestas 500. Solo para desarrollo.
	DebugErrors bool
	LogLevel    string
}

// IsDevelopment indica si la app corre en modo desarrollo.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// DBConfig configuración de la base de datos relacional.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver       string // postgres, mysql, sqlite
	DatabaseURL  string
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	SQLitePath   string
	Migrate      bool // aplicar migraciones embebidas al arrancar
	QueryTimeout time.Duration
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
// Para MySQL y SQLite el DSN lo arma el paquete database con los tipos de cada driver.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// SessionConfig configuración del almacén de sesiones y de la cookie.
type SessionConfig struct {
	Driver       string // redis, jwt
	CookieName   string
	TTL          time.Duration
	SecureCookie bool
}

// RedisConfig conexión a Redis (driver de sesión "redis").
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig configuración de JWT (driver de sesión "jwt").
type JWTConfig struct {
	Secret string
	Issuer string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host               string
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LoginRatePerMinute int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_DRIVER, SESSION_DRIVER, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	env := getString(v, "APP_ENV", "development")
	cfg := &Config{
		App: AppConfig{
			Env:         env,
			Name:        getString(v, "APP_NAME", "tienda-api"),
			DebugErrors: getBool(v, "APP_DEBUG_ERRORS", false),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:       strings.ToLower(getString(v, "DB_DRIVER", DriverPostgres)),
			DatabaseURL:  getString(v, "DATABASE_URL", ""),
			Host:         getString(v, "DB_HOST", "localhost"),
			Port:         getInt(v, "DB_PORT", 5432),
			User:         getString(v, "DB_USER", "postgres"),
			Password:     getString(v, "DB_PASSWORD", ""),
			DBName:       getString(v, "DB_NAME", "tienda"),
			SSLMode:      getString(v, "DB_SSLMODE", "disable"),
			SQLitePath:   getString(v, "DB_SQLITE_PATH", "tienda.db"),
			Migrate:      getBool(v, "DB_MIGRATE", true),
			QueryTimeout: time.Duration(getInt(v, "DB_QUERY_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Session: SessionConfig{
			Driver:       strings.ToLower(getString(v, "SESSION_DRIVER", SessionRedis)),
			CookieName:   getString(v, "SESSION_COOKIE", "tienda_session"),
			TTL:          time.Duration(getInt(v, "SESSION_TTL_MINUTES", 480)) * time.Minute,
			SecureCookie: getBool(v, "SESSION_SECURE_COOKIE", env == "production"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "127.0.0.1:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "tienda-api"),
		},
		HTTP: HTTPConfig{
			Host:               getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:               getInt(v, "HTTP_PORT", 8080),
			ReadTimeout:        time.Duration(getInt(v, "HTTP_READ_TIMEOUT_SECONDS", 10)) * time.Second,
			WriteTimeout:       time.Duration(getInt(v, "HTTP_WRITE_TIMEOUT_SECONDS", 10)) * time.Second,
			LoginRatePerMinute: getInt(v, "LOGIN_RATE_PER_MINUTE", 10),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rechaza combinaciones de configuración que no pueden arrancar.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("config: DB_DRIVER desconocido %q", c.DB.Driver)
	}
	switch c.Session.Driver {
	case SessionRedis:
		if c.Redis.Addr == "" {
			return errors.New("config: REDIS_ADDR requerido con SESSION_DRIVER=redis")
		}
	case SessionJWT:
		if c.JWT.Secret == "" {
			return errors.New("config: JWT_SECRET requerido con SESSION_DRIVER=jwt")
		}
	default:
		return fmt.Errorf("config: SESSION_DRIVER desconocido %q", c.Session.Driver)
	}
	if c.Session.TTL <= 0 {
		return errors.New("config: SESSION_TTL_MINUTES debe ser positivo")
	}
	if c.App.DebugErrors && c.App.Env == "production" {
		return errors.New("config: APP_DEBUG_ERRORS no se permite en production")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
