package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterClientRequest formulario de registro de cliente. Direccion es opcional.
type RegisterClientRequest struct {
	Nombre          string `json:"nombre" form:"nombre" validate:"required,max=100"`
	ApellidoPaterno string `json:"apellidoPaterno" form:"apellidoPaterno" validate:"required,max=100"`
	ApellidoMaterno string `json:"apellidoMaterno" form:"apellidoMaterno" validate:"required,max=100"`
	Telefono        string `json:"telefono" form:"telefono" validate:"required,max=20"`
	Direccion       string `json:"direccion" form:"direccion" validate:"omitempty,max=255"`
	Usuario         string `json:"usuario" form:"usuario" validate:"required,max=60"`
	Contrasena      string `json:"contrasena" form:"contrasena" validate:"required,min=6,max=72"`
}

// RegisterClientResponse resultado del registro con el ID generado.
type RegisterClientResponse struct {
	Success  bool  `json:"success"`
	ClientID int64 `json:"clientId"`
}

// PurchaseResponse un ticket del cliente con su total.
type PurchaseResponse struct {
	TicketID      int64           `json:"ticketId"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	Total         decimal.Decimal `json:"total"`
}
