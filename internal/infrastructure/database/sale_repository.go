package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo lectura de Ticket_Venta y Detalle_Venta.
type SaleRepo struct {
	r runner
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(db *DB) *SaleRepo {
	return &SaleRepo{r: runner{q: db.SQL, d: db.Dialect}}
}

// GetTicket obtiene la cabecera del ticket con cliente y método de pago resueltos.
func (r *SaleRepo) GetTicket(ctx context.Context, id int64) (*entity.SaleTicket, error) {
	const query = "SELECT t.`ID_Ticket`, t.`Fecha`, t.`ID_Cliente`, c.`Nombre`, c.`Apellido_Paterno`, c.`Apellido_Materno`, m.`Tipo de pago`, t.`ID_Empleado` " +
		"FROM `Ticket_Venta` t " +
		"JOIN `Cliente` c ON c.`ID_Cliente` = t.`ID_Cliente` " +
		"JOIN `Metodo de pago` m ON m.`ID_Metodo` = t.`ID_Metodo` " +
		"WHERE t.`ID_Ticket` = ?"
	var (
		t        entity.SaleTicket
		fecha    scanTime
		cliente  entity.Client
		empleado sql.NullInt64
	)
	err := r.r.queryRow(ctx, query, id).Scan(
		&t.ID, &fecha, &t.ClienteID, &cliente.Nombre, &cliente.ApellidoPaterno, &cliente.ApellidoMaterno, &t.MetodoPago, &empleado,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	t.Fecha = fecha.Time
	t.Cliente = cliente.FullName()
	t.EmpleadoID = nullInt64Ptr(empleado)
	return &t, nil
}

// Lines devuelve las líneas del ticket con el nombre del producto, en orden de captura.
func (r *SaleRepo) Lines(ctx context.Context, ticketID int64) ([]entity.SaleLine, error) {
	const query = "SELECT d.`ID_Detalle`, d.`ID_Ticket`, d.`Codigo_Producto`, p.`Nombre`, d.`Cantidad`, d.`Precio_Unitario` " +
		"FROM `Detalle_Venta` d " +
		"JOIN `Producto` p ON p.`Codigo_Producto` = d.`Codigo_Producto` " +
		"WHERE d.`ID_Ticket` = ? " +
		"ORDER BY d.`ID_Detalle`"
	rows, err := r.r.query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("lineas ticket: %w", err)
	}
	defer rows.Close()

	out := make([]entity.SaleLine, 0)
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.TicketID, &l.ProductoCodigo, &l.ProductoNombre, &l.Cantidad, &l.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("lineas ticket scan: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
