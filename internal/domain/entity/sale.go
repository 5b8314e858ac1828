package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleTicket cabecera de una venta (Ticket_Venta) con los nombres ya resueltos.
type SaleTicket struct {
	ID         int64
	Fecha      time.Time
	ClienteID  int64
	Cliente    string
	MetodoPago string
	EmpleadoID *int64
}

// SaleLine línea de Detalle_Venta.
type SaleLine struct {
	ID             int64
	TicketID       int64
	ProductoCodigo string
	ProductoNombre string
	Cantidad       int64
	PrecioUnitario decimal.Decimal
}

// Total importe de la línea.
func (l SaleLine) Total() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromInt(l.Cantidad))
}

// Purchase resumen de un ticket de un cliente: total agregado por ticket.
type Purchase struct {
	TicketID   int64
	Fecha      time.Time
	MetodoPago string
	Total      decimal.Decimal
}
