package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var errDB = errors.New("conexión perdida")

type stubClientRepo struct {
	clients    []*entity.Client
	purchases  map[int64][]entity.Purchase
	existsErr  error
	existsHits int
	// uniqueOnCreate simula el índice único: Create falla aunque UsuarioTaken haya dicho que no.
	uniqueOnCreate bool
}

func (s *stubClientRepo) Create(_ context.Context, c *entity.Client) (int64, error) {
	if s.uniqueOnCreate {
		return 0, domain.ErrDuplicate
	}
	c.ID = int64(len(s.clients) + 1)
	s.clients = append(s.clients, c)
	return c.ID, nil
}

func (s *stubClientRepo) Exists(_ context.Context, id int64) (bool, error) {
	s.existsHits++
	if s.existsErr != nil {
		return false, s.existsErr
	}
	for _, c := range s.clients {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubClientRepo) GetByUsuario(_ context.Context, u string) (*entity.Client, error) {
	for _, c := range s.clients {
		if c.Usuario == u {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubClientRepo) UsuarioTaken(ctx context.Context, u string) (bool, error) {
	c, _ := s.GetByUsuario(ctx, u)
	return c != nil, nil
}

func (s *stubClientRepo) Purchases(_ context.Context, id int64) ([]entity.Purchase, error) {
	return append([]entity.Purchase{}, s.purchases[id]...), nil
}

type stubEmployeeRepo struct {
	usuarios map[string]bool
}

func (s *stubEmployeeRepo) Create(context.Context, *entity.Employee) (int64, error) { return 0, nil }
func (s *stubEmployeeRepo) GetByUsuario(context.Context, string) (*entity.Employee, error) {
	return nil, nil
}
func (s *stubEmployeeRepo) UsuarioTaken(_ context.Context, u string) (bool, error) {
	return s.usuarios[u], nil
}

// stubTx ejecuta fn sin transacción real; descarta los clientes creados si fn falla.
type stubTx struct {
	clients   *stubClientRepo
	employees *stubEmployeeRepo
	runs      int
}

func (s *stubTx) RunAccounts(_ context.Context, fn func(repository.ClientRepository, repository.EmployeeRepository) error) error {
	s.runs++
	before := len(s.clients.clients)
	if err := fn(s.clients, s.employees); err != nil {
		s.clients.clients = s.clients.clients[:before]
		return err
	}
	return nil
}

type stubCatalogRepo struct {
	err error
}

func (s *stubCatalogRepo) PaymentMethods(context.Context) ([]entity.PaymentMethod, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []entity.PaymentMethod{{ID: 1, Tipo: "Efectivo"}, {ID: 2, Tipo: "Tarjeta"}}, nil
}

func (s *stubCatalogRepo) ProductTypes(context.Context) ([]entity.ProductType, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []entity.ProductType{}, nil
}

type stubSupplierRepo struct {
	created []*entity.Supplier
}

func (s *stubSupplierRepo) Create(_ context.Context, sup *entity.Supplier) (int64, error) {
	s.created = append(s.created, sup)
	return int64(len(s.created)), nil
}

func (s *stubSupplierRepo) List(context.Context) ([]entity.Supplier, error) {
	out := make([]entity.Supplier, 0, len(s.created))
	for _, sup := range s.created {
		out = append(out, *sup)
	}
	return out, nil
}

type stubSaleRepo struct {
	tickets map[int64]*entity.SaleTicket
	lines   map[int64][]entity.SaleLine
	err     error
}

func (s *stubSaleRepo) GetTicket(_ context.Context, id int64) (*entity.SaleTicket, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tickets[id], nil
}

func (s *stubSaleRepo) Lines(_ context.Context, id int64) ([]entity.SaleLine, error) {
	return s.lines[id], nil
}

type stubPDF struct {
	total decimal.Decimal
	lines int
}

func (s *stubPDF) GenerateSaleTicketPDF(_ context.Context, _ *entity.SaleTicket, lines []entity.SaleLine, total decimal.Decimal) ([]byte, error) {
	s.total, s.lines = total, len(lines)
	return []byte("%PDF-1.3"), nil
}

type stubProductRepo struct{}

func (stubProductRepo) List(context.Context) ([]entity.Product, error) {
	prov := int64(3)
	return []entity.Product{
		{Codigo: "B-02", Nombre: "Agua", Precio: decimal.RequireFromString("8"), Existencia: 10, TipoID: 2, TipoNombre: "Bebidas", ProveedorID: &prov},
	}, nil
}
