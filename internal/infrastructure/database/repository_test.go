package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// newTestDB abre una base SQLite en un directorio temporal con todas las migraciones aplicadas.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "tienda.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

func mustExec(t *testing.T, db *DB, query string, args ...any) {
	t.Helper()
	_, err := db.SQL.Exec(db.Dialect.Rebind(query), args...)
	require.NoError(t, err)
}

func createClient(t *testing.T, db *DB, usuario string) int64 {
	t.Helper()
	id, err := NewClientRepository(db).Create(context.Background(), &entity.Client{
		Nombre: "Lucía", ApellidoPaterno: "Mora", ApellidoMaterno: "Ríos",
		Telefono: "5551234", Usuario: usuario, PasswordHash: "hash",
	})
	require.NoError(t, err)
	return id
}

func paymentMethodID(t *testing.T, db *DB, tipo string) int64 {
	t.Helper()
	methods, err := NewCatalogRepository(db).PaymentMethods(context.Background())
	require.NoError(t, err)
	for _, m := range methods {
		if m.Tipo == tipo {
			return m.ID
		}
	}
	t.Fatalf("método de pago %q no sembrado", tipo)
	return 0
}

// seedSales crea dos productos y dos tickets del cliente; el más reciente paga con tarjeta.
func seedSales(t *testing.T, db *DB, clientID int64) {
	t.Helper()
	efectivo := paymentMethodID(t, db, "Efectivo")
	tarjeta := paymentMethodID(t, db, "Tarjeta")

	mustExec(t, db, "INSERT INTO `Producto` (`Codigo_Producto`, `Nombre`, `Precio`, `Existencia`, `ID_Tipo_Producto`) VALUES (?, ?, ?, ?, ?)",
		"A-01", "Arroz", "12.50", 40, 1)
	mustExec(t, db, "INSERT INTO `Producto` (`Codigo_Producto`, `Nombre`, `Precio`, `Existencia`, `ID_Tipo_Producto`) VALUES (?, ?, ?, ?, ?)",
		"B-02", "Agua", "8.00", 10, 2)

	mustExec(t, db, "INSERT INTO `Ticket_Venta` (`ID_Ticket`, `Fecha`, `ID_Cliente`, `ID_Metodo`) VALUES (?, ?, ?, ?)",
		1, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), clientID, efectivo)
	mustExec(t, db, "INSERT INTO `Ticket_Venta` (`ID_Ticket`, `Fecha`, `ID_Cliente`, `ID_Metodo`) VALUES (?, ?, ?, ?)",
		2, time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC), clientID, tarjeta)

	mustExec(t, db, "INSERT INTO `Detalle_Venta` (`ID_Ticket`, `Codigo_Producto`, `Cantidad`, `Precio_Unitario`) VALUES (?, ?, ?, ?)",
		1, "A-01", 3, "12.50")
	mustExec(t, db, "INSERT INTO `Detalle_Venta` (`ID_Ticket`, `Codigo_Producto`, `Cantidad`, `Precio_Unitario`) VALUES (?, ?, ?, ?)",
		1, "B-02", 1, "8.00")
	mustExec(t, db, "INSERT INTO `Detalle_Venta` (`ID_Ticket`, `Codigo_Producto`, `Cantidad`, `Precio_Unitario`) VALUES (?, ?, ?, ?)",
		2, "B-02", 2, "8.00")
}

func TestMigrate_Idempotente(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, db.Migrate())
}

func TestCatalogRepo_Ordenados(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	methods, err := repo.PaymentMethods(ctx)
	require.NoError(t, err)
	var tipos []string
	for _, m := range methods {
		tipos = append(tipos, m.Tipo)
	}
	assert.Equal(t, []string{"Efectivo", "Tarjeta", "Transferencia", "Vales"}, tipos)

	types, err := repo.ProductTypes(ctx)
	require.NoError(t, err)
	var nombres []string
	for _, pt := range types {
		nombres = append(nombres, pt.Nombre)
	}
	assert.Equal(t, []string{"Abarrotes", "Bebidas", "Farmacia", "Limpieza"}, nombres)
}

func TestClientRepo_CreateYGetByUsuario(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	id := createClient(t, db, "lucia")
	assert.Positive(t, id)

	got, err := repo.GetByUsuario(ctx, "lucia")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Lucía Mora Ríos", got.FullName())
	assert.Empty(t, got.Direccion)

	missing, err := repo.GetByUsuario(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)

	ok, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Exists(ctx, id+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientRepo_UsuarioDuplicado(t *testing.T) {
	db := newTestDB(t)
	createClient(t, db, "lucia")

	_, err := NewClientRepository(db).Create(context.Background(), &entity.Client{
		Nombre: "Otra", ApellidoPaterno: "P", ApellidoMaterno: "M", Telefono: "1", Usuario: "lucia", PasswordHash: "x",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	var n int
	require.NoError(t, db.SQL.QueryRow(`SELECT COUNT(*) FROM "Cliente"`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestClientRepo_Purchases(t *testing.T) {
	db := newTestDB(t)
	clientID := createClient(t, db, "lucia")
	seedSales(t, db, clientID)

	purchases, err := NewClientRepository(db).Purchases(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, purchases, 2)

	assert.Equal(t, int64(2), purchases[0].TicketID)
	assert.Equal(t, "Tarjeta", purchases[0].MetodoPago)
	assert.True(t, decimal.RequireFromString("16").Equal(purchases[0].Total), purchases[0].Total.String())
	assert.True(t, purchases[0].Fecha.Equal(time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)))

	assert.Equal(t, int64(1), purchases[1].TicketID)
	assert.Equal(t, "Efectivo", purchases[1].MetodoPago)
	assert.True(t, decimal.RequireFromString("45.5").Equal(purchases[1].Total), purchases[1].Total.String())
}

func TestClientRepo_PurchasesSinTickets(t *testing.T) {
	db := newTestDB(t)
	clientID := createClient(t, db, "lucia")

	purchases, err := NewClientRepository(db).Purchases(context.Background(), clientID)
	require.NoError(t, err)
	assert.NotNil(t, purchases)
	assert.Empty(t, purchases)
}

func TestSaleRepo_TicketYLineas(t *testing.T) {
	db := newTestDB(t)
	clientID := createClient(t, db, "lucia")
	seedSales(t, db, clientID)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	ticket, err := repo.GetTicket(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, clientID, ticket.ClienteID)
	assert.Equal(t, "Lucía Mora Ríos", ticket.Cliente)
	assert.Equal(t, "Efectivo", ticket.MetodoPago)
	assert.Nil(t, ticket.EmpleadoID)

	lines, err := repo.Lines(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "A-01", lines[0].ProductoCodigo)
	assert.Equal(t, "Arroz", lines[0].ProductoNombre)
	assert.Equal(t, int64(3), lines[0].Cantidad)
	assert.True(t, decimal.RequireFromString("37.5").Equal(lines[0].Total()))

	missing, err := repo.GetTicket(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	none, err := repo.Lines(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSupplierRepo_CreateYList(t *testing.T) {
	db := newTestDB(t)
	repo := NewSupplierRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &entity.Supplier{Nombre: "Zeta Distribuciones", Telefono: "5550001"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Supplier{Nombre: "Alfa Mayoreo", Telefono: "5550002", Direccion: "Calle 1", Email: "ventas@alfa.mx"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alfa Mayoreo", list[0].Nombre)
	assert.Equal(t, "ventas@alfa.mx", list[0].Email)
	assert.Equal(t, "Zeta Distribuciones", list[1].Nombre)
	assert.Empty(t, list[1].Direccion)

	var nulls int
	require.NoError(t, db.SQL.QueryRow(`SELECT COUNT(*) FROM "Proveedor" WHERE "Email" IS NULL`).Scan(&nulls))
	assert.Equal(t, 1, nulls)
}

func TestProductRepo_List(t *testing.T) {
	db := newTestDB(t)
	seedSales(t, db, createClient(t, db, "lucia"))

	products, err := NewProductRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Agua", products[0].Nombre)
	assert.Equal(t, "Bebidas", products[0].TipoNombre)
	assert.True(t, decimal.RequireFromString("8").Equal(products[0].Precio))
	assert.Equal(t, int64(10), products[0].Existencia)
	assert.Nil(t, products[0].ProveedorID)
	assert.Equal(t, "Arroz", products[1].Nombre)
}

func TestEmployeeRepo(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &entity.Employee{Nombre: "Rosa", Usuario: "rosa", PasswordHash: "h", Role: entity.RoleBodegero})
	require.NoError(t, err)

	got, err := repo.GetByUsuario(ctx, "rosa")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.RoleBodegero, got.Role)

	_, err = repo.Create(ctx, &entity.Employee{Nombre: "Rosa 2", Usuario: "rosa", PasswordHash: "h", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = repo.Create(ctx, &entity.Employee{Nombre: "C", Usuario: "c", PasswordHash: "h", Role: entity.RoleCliente})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	taken, err := repo.UsuarioTaken(ctx, "rosa")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	db := newTestDB(t)
	runner := NewTxRunner(db)
	ctx := context.Background()

	err := runner.RunAccounts(ctx, func(clients repository.ClientRepository, _ repository.EmployeeRepository) error {
		if _, err := clients.Create(ctx, &entity.Client{
			Nombre: "A", ApellidoPaterno: "B", ApellidoMaterno: "C", Telefono: "1", Usuario: "temporal", PasswordHash: "h",
		}); err != nil {
			return err
		}
		return domain.ErrDuplicate
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	taken, err := NewClientRepository(db).UsuarioTaken(ctx, "temporal")
	require.NoError(t, err)
	assert.False(t, taken)
}
