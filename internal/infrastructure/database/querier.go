package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Querier es la primitiva de ejecución de consultas: la cumplen *sql.DB y *sql.Tx,
// así los repositorios funcionan igual dentro y fuera de una transacción.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// runner aplica Rebind a cada consulta antes de pasarla al Querier.
type runner struct {
	q Querier
	d Dialect
}

func (r runner) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.q.ExecContext(ctx, r.d.Rebind(query), args...)
}

func (r runner) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.q.QueryContext(ctx, r.d.Rebind(query), args...)
}

func (r runner) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return r.q.QueryRowContext(ctx, r.d.Rebind(query), args...)
}

// insert ejecuta un INSERT y devuelve el ID generado en idColumn.
func (r runner) insert(ctx context.Context, query, idColumn string, args ...any) (int64, error) {
	if r.d.supportsReturning() {
		var id int64
		if err := r.queryRow(ctx, query+" RETURNING `"+idColumn+"`", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	res, err := r.exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// exists consulta si hay al menos una fila con column = value. table y column son identificadores fijos del esquema.
func (r runner) exists(ctx context.Context, table, column string, value any) (bool, error) {
	query := "SELECT 1 FROM " + r.d.Quote(table) + " WHERE " + r.d.Quote(column) + " = ? LIMIT 1"
	var one int
	err := r.queryRow(ctx, query, value).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// scanTime acepta las distintas representaciones de fecha de los drivers:
// time.Time (pgx, mysql con parseTime), texto (sqlite) o bytes (mysql sin parseTime).
type scanTime struct {
	Time time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (s *scanTime) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		s.Time = time.Time{}
		return nil
	case time.Time:
		s.Time = x
		return nil
	case string:
		return s.parse(x)
	case []byte:
		return s.parse(string(x))
	}
	return fmt.Errorf("scanTime: tipo no soportado %T", v)
}

func (s *scanTime) parse(v string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			s.Time = t
			return nil
		}
	}
	return fmt.Errorf("scanTime: formato de fecha desconocido %q", v)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
