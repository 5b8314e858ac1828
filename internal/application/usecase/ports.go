package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// AccountsTxRunner ejecuta fn con repositorios de cuentas dentro de una misma transacción.
type AccountsTxRunner interface {
	RunAccounts(ctx context.Context, fn func(
		clients repository.ClientRepository,
		employees repository.EmployeeRepository,
	) error) error
}

// SaleTicketPDFGenerator genera el PDF imprimible de un ticket de venta.
type SaleTicketPDFGenerator interface {
	GenerateSaleTicketPDF(ctx context.Context, ticket *entity.SaleTicket, lines []entity.SaleLine, total decimal.Decimal) ([]byte, error)
}
