package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleTicketResponse cabecera de un ticket de venta.
type SaleTicketResponse struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"date"`
	ClientID      int64           `json:"clientId"`
	Client        string          `json:"client"`
	PaymentMethod string          `json:"paymentMethod"`
	EmployeeID    *int64          `json:"employeeId"`
	Total         decimal.Decimal `json:"total"`
}

// SaleLineResponse línea de Detalle_Venta.
type SaleLineResponse struct {
	ID          int64           `json:"id"`
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// SaleDetailResponse respuesta de GET /api/sales/:id. Ticket es null si no existe; Lines nunca es null.
type SaleDetailResponse struct {
	Ticket *SaleTicketResponse `json:"ticket"`
	Lines  []SaleLineResponse  `json:"lines"`
}
