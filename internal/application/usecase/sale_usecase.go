package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// SaleUseCase detalle de tickets de venta y su PDF.
type SaleUseCase struct {
	repo      repository.SaleRepository
	generator SaleTicketPDFGenerator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, generator SaleTicketPDFGenerator) *SaleUseCase {
	return &SaleUseCase{repo: repo, generator: generator}
}

// Detail devuelve el ticket con sus líneas en el orden en que se guardaron.
// Un ticket inexistente, o ajeno para un cliente, devuelve ticket nulo y líneas vacías.
func (uc *SaleUseCase) Detail(ctx context.Context, sess entity.Session, id int64) (*dto.SaleDetailResponse, error) {
	out := &dto.SaleDetailResponse{Lines: []dto.SaleLineResponse{}}
	ticket, lines, err := uc.load(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return out, nil
	}

	total := decimal.Zero
	for _, l := range lines {
		lt := l.Total()
		total = total.Add(lt)
		out.Lines = append(out.Lines, dto.SaleLineResponse{
			ID:          l.ID,
			ProductCode: l.ProductoCodigo,
			ProductName: l.ProductoNombre,
			Quantity:    l.Cantidad,
			UnitPrice:   l.PrecioUnitario.Round(2),
			Total:       lt.Round(2),
		})
	}
	out.Ticket = &dto.SaleTicketResponse{
		ID:            ticket.ID,
		Date:          ticket.Fecha,
		ClientID:      ticket.ClienteID,
		Client:        ticket.Cliente,
		PaymentMethod: ticket.MetodoPago,
		EmployeeID:    ticket.EmpleadoID,
		Total:         total.Round(2),
	}
	return out, nil
}

// TicketPDF genera el PDF del ticket y el nombre de archivo sugerido. ErrNotFound si no existe o es ajeno.
func (uc *SaleUseCase) TicketPDF(ctx context.Context, sess entity.Session, id int64) ([]byte, string, error) {
	ticket, lines, err := uc.load(ctx, sess, id)
	if err != nil {
		return nil, "", err
	}
	if ticket == nil {
		return nil, "", domain.ErrNotFound
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	pdf, err := uc.generator.GenerateSaleTicketPDF(ctx, ticket, lines, total.Round(2))
	if err != nil {
		return nil, "", fmt.Errorf("pdf ticket %d: %w", id, err)
	}
	return pdf, fmt.Sprintf("ticket_%06d.pdf", ticket.ID), nil
}

func (uc *SaleUseCase) load(ctx context.Context, sess entity.Session, id int64) (*entity.SaleTicket, []entity.SaleLine, error) {
	if id <= 0 {
		return nil, nil, domain.NewValidationError("id")
	}
	ticket, err := uc.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if ticket == nil || !auth.CanReadClient(sess, ticket.ClienteID) {
		return nil, nil, nil
	}
	lines, err := uc.repo.Lines(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return ticket, lines, nil
}
