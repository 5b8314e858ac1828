package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// SaleRepository lectura de tickets de venta y sus líneas.
type SaleRepository interface {
	// GetTicket devuelve nil, nil si el ticket no existe.
	GetTicket(ctx context.Context, id int64) (*entity.SaleTicket, error)
	// Lines devuelve las líneas en el orden en que se guardaron.
	Lines(ctx context.Context, ticketID int64) ([]entity.SaleLine, error)
}
