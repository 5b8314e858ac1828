package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con DB o tx).
type ClientRepo struct {
	r runner
}

// NewClientRepository construye el adaptador.
func NewClientRepository(db *DB) *ClientRepo {
	return &ClientRepo{r: runner{q: db.SQL, d: db.Dialect}}
}

// Create persiste un nuevo cliente. El índice único sobre Usuario es la garantía final contra duplicados.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) (int64, error) {
	const query = "INSERT INTO `Cliente` (`Nombre`, `Apellido_Paterno`, `Apellido_Materno`, `Telefono`, `Direccion`, `Usuario`, `Contrasena`) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?)"
	id, err := r.r.insert(ctx, query, "ID_Cliente",
		c.Nombre, c.ApellidoPaterno, c.ApellidoMaterno, c.Telefono, nullString(c.Direccion), c.Usuario, c.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert cliente: %w", err)
	}
	return id, nil
}

// Exists informa si hay un cliente con ese ID.
func (r *ClientRepo) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := r.r.exists(ctx, "Cliente", "ID_Cliente", id)
	if err != nil {
		return false, fmt.Errorf("exists cliente: %w", err)
	}
	return ok, nil
}

// GetByUsuario obtiene un cliente por usuario (ya normalizado).
func (r *ClientRepo) GetByUsuario(ctx context.Context, usuario string) (*entity.Client, error) {
	const query = "SELECT `ID_Cliente`, `Nombre`, `Apellido_Paterno`, `Apellido_Materno`, `Telefono`, `Direccion`, `Usuario`, `Contrasena` " +
		"FROM `Cliente` WHERE `Usuario` = ?"
	var (
		c   entity.Client
		dir sql.NullString
	)
	err := r.r.queryRow(ctx, query, usuario).Scan(
		&c.ID, &c.Nombre, &c.ApellidoPaterno, &c.ApellidoMaterno, &c.Telefono, &dir, &c.Usuario, &c.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by usuario: %w", err)
	}
	c.Direccion = dir.String
	return &c, nil
}

// UsuarioTaken informa si el usuario ya está registrado como cliente.
func (r *ClientRepo) UsuarioTaken(ctx context.Context, usuario string) (bool, error) {
	ok, err := r.r.exists(ctx, "Cliente", "Usuario", usuario)
	if err != nil {
		return false, fmt.Errorf("usuario cliente: %w", err)
	}
	return ok, nil
}

// Purchases lista los tickets del cliente con el total de sus líneas, del más reciente al más antiguo.
// Un ticket sin líneas aparece con total cero.
func (r *ClientRepo) Purchases(ctx context.Context, clientID int64) ([]entity.Purchase, error) {
	const query = "SELECT t.`ID_Ticket`, t.`Fecha`, m.`Tipo de pago`, COALESCE(SUM(d.`Cantidad` * d.`Precio_Unitario`), 0) " +
		"FROM `Ticket_Venta` t " +
		"JOIN `Metodo de pago` m ON m.`ID_Metodo` = t.`ID_Metodo` " +
		"LEFT JOIN `Detalle_Venta` d ON d.`ID_Ticket` = t.`ID_Ticket` " +
		"WHERE t.`ID_Cliente` = ? " +
		"GROUP BY t.`ID_Ticket`, t.`Fecha`, m.`Tipo de pago` " +
		"ORDER BY t.`Fecha` DESC, t.`ID_Ticket` DESC"

	rows, err := r.r.query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("compras cliente: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Purchase, 0)
	for rows.Next() {
		var (
			p     entity.Purchase
			fecha scanTime
		)
		if err := rows.Scan(&p.TicketID, &fecha, &p.MetodoPago, &p.Total); err != nil {
			return nil, fmt.Errorf("compras cliente scan: %w", err)
		}
		p.Fecha = fecha.Time
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("compras cliente: %w", err)
	}
	return out, nil
}
