package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func TestCatalogUseCase(t *testing.T) {
	uc := NewCatalogUseCase(&stubCatalogRepo{})
	ctx := context.Background()

	methods, err := uc.PaymentMethods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.PaymentMethodResponse{{ID: 1, Type: "Efectivo"}, {ID: 2, Type: "Tarjeta"}}, methods)

	types, err := uc.ProductTypes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, types)
	assert.Empty(t, types)

	_, err = NewCatalogUseCase(&stubCatalogRepo{err: errDB}).PaymentMethods(ctx)
	assert.ErrorIs(t, err, errDB)
}

func TestSupplierUseCase_Create(t *testing.T) {
	repo := &stubSupplierRepo{}
	uc := NewSupplierUseCase(repo)
	ctx := context.Background()

	id, err := uc.Create(ctx, dto.CreateSupplierRequest{Nombre: " Alfa ", Telefono: "555"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "Alfa", repo.created[0].Nombre)

	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Nombre: "Beta", Telefono: "  "})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"phone"}, verr.Fields)
	assert.Len(t, repo.created, 1)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.SupplierResponse{{ID: 0, Name: "Alfa", Phone: "555"}}, list)
}

func TestProductUseCase_List(t *testing.T) {
	out, err := NewProductUseCase(stubProductRepo{}).List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "B-02", out[0].Code)
	assert.Equal(t, "Bebidas", out[0].Type)
	require.NotNil(t, out[0].SupplierID)
	assert.Equal(t, int64(3), *out[0].SupplierID)
}

func newSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{
		tickets: map[int64]*entity.SaleTicket{
			42: {ID: 42, Fecha: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), ClienteID: 9, Cliente: "Lucía Mora", MetodoPago: "Efectivo"},
		},
		lines: map[int64][]entity.SaleLine{
			42: {
				{ID: 1, TicketID: 42, ProductoCodigo: "A-01", ProductoNombre: "Arroz", Cantidad: 3, PrecioUnitario: decimal.RequireFromString("12.50")},
				{ID: 2, TicketID: 42, ProductoCodigo: "B-02", ProductoNombre: "Agua", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("8")},
			},
		},
	}
}

func TestSaleDetail_DosLineasEnOrden(t *testing.T) {
	uc := NewSaleUseCase(newSaleRepo(), &stubPDF{})

	out, err := uc.Detail(context.Background(), entity.Session{ID: 1, Role: entity.RoleAdmin}, 42)
	require.NoError(t, err)
	require.NotNil(t, out.Ticket)
	assert.Equal(t, int64(42), out.Ticket.ID)
	assert.True(t, decimal.RequireFromString("45.5").Equal(out.Ticket.Total))
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "A-01", out.Lines[0].ProductCode)
	assert.Equal(t, "B-02", out.Lines[1].ProductCode)
	assert.True(t, decimal.RequireFromString("37.5").Equal(out.Lines[0].Total))
}

func TestSaleDetail_TicketInexistente(t *testing.T) {
	uc := NewSaleUseCase(newSaleRepo(), &stubPDF{})

	out, err := uc.Detail(context.Background(), entity.Session{ID: 1, Role: entity.RoleAdmin}, 99)
	require.NoError(t, err)
	assert.Nil(t, out.Ticket)
	assert.NotNil(t, out.Lines)
	assert.Empty(t, out.Lines)
}

func TestSaleDetail_TicketDeOtroCliente(t *testing.T) {
	uc := NewSaleUseCase(newSaleRepo(), &stubPDF{})

	out, err := uc.Detail(context.Background(), entity.Session{ID: 5, Role: entity.RoleCliente}, 42)
	require.NoError(t, err)
	assert.Nil(t, out.Ticket)
	assert.Empty(t, out.Lines)

	own, err := uc.Detail(context.Background(), entity.Session{ID: 9, Role: entity.RoleCliente}, 42)
	require.NoError(t, err)
	assert.NotNil(t, own.Ticket)
}

func TestSaleDetail_ErrorDeAlmacen(t *testing.T) {
	repo := newSaleRepo()
	repo.err = errDB
	_, err := NewSaleUseCase(repo, &stubPDF{}).Detail(context.Background(), entity.Session{ID: 1, Role: entity.RoleAdmin}, 42)
	assert.ErrorIs(t, err, errDB)
}

func TestTicketPDF(t *testing.T) {
	gen := &stubPDF{}
	uc := NewSaleUseCase(newSaleRepo(), gen)
	ctx := context.Background()
	admin := entity.Session{ID: 1, Role: entity.RoleAdmin}

	out, name, err := uc.TicketPDF(ctx, admin, 42)
	require.NoError(t, err)
	assert.Equal(t, "ticket_000042.pdf", name)
	assert.NotEmpty(t, out)
	assert.Equal(t, 2, gen.lines)
	assert.True(t, decimal.RequireFromString("45.5").Equal(gen.total))

	_, _, err = uc.TicketPDF(ctx, admin, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = uc.TicketPDF(ctx, entity.Session{ID: 5, Role: entity.RoleCliente}, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
