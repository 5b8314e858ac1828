package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Gate       Authorizer
	AuthUC     *auth.AuthUseCase
	ClientUC   *usecase.ClientUseCase
	CatalogUC  *usecase.CatalogUseCase
	SupplierUC *usecase.SupplierUseCase
	SaleUC     *usecase.SaleUseCase
	ProductUC  *usecase.ProductUseCase
	DB         Pinger
	Log        *logger.Logger

	Cookie             CookieConfig
	DebugErrors        bool
	QueryTimeout       time.Duration
	LoginRatePerMinute int // 0 desactiva el límite
}

// Router registra las rutas de la API y de los paneles.
func Router(app *fiber.App, deps RouterDeps) {
	cfg := HandlerConfig{Log: deps.Log, DebugErrors: deps.DebugErrors, QueryTimeout: deps.QueryTimeout}
	guard := NewGuard(deps.Gate, deps.Cookie.Name, cfg)

	app.Get("/health", NewHealthHandler(deps.DB, cfg).Check)

	api := app.Group("/api")

	// Sesión (público)
	authHandler := NewAuthHandler(deps.AuthUC, guard, deps.Cookie, cfg)
	api.Get("/session", authHandler.Session)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", loginLimiter(deps.LoginRatePerMinute), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Catálogos (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, cfg)
	api.Get("/payment-methods", catalogHandler.PaymentMethods)
	api.Get("/product-types", catalogHandler.ProductTypes)

	// Registro de clientes (público)
	clientHandler := NewClientHandler(deps.ClientUC, cfg)
	api.Post("/registrations", clientHandler.Register)

	// Compras: cualquier sesión; el alcance por cliente lo decide el caso de uso
	api.Get("/clients/:id/purchases", guard.RequireSession(), clientHandler.Purchases)

	// Proveedores
	supplierHandler := NewSupplierHandler(deps.SupplierUC, cfg)
	api.Post("/suppliers", guard.RequireSession(entity.RoleAdmin), supplierHandler.Create)
	api.Get("/suppliers", guard.RequireSession(entity.RoleAdmin, entity.RoleBodegero), supplierHandler.List)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC, cfg)
	api.Get("/products", guard.RequireSession(entity.RoleAdmin, entity.RoleBodegero), productHandler.List)

	// Ventas (cualquier sesión)
	saleHandler := NewSaleHandler(deps.SaleUC, cfg)
	sales := api.Group("/sales", guard.RequireSession())
	sales.Get("/:id", saleHandler.Detail)
	sales.Get("/:id/pdf", saleHandler.PDF)

	// Paneles (modo página)
	panelHandler := NewPanelHandler(deps.ClientUC, cfg)
	app.Get(auth.LoginPath, panelHandler.Login)
	app.Get(auth.UnauthorizedPath, panelHandler.Unauthorized)
	app.Get("/admin", guard.RequirePage(entity.RoleAdmin), panelHandler.Admin)
	app.Get("/bodega", guard.RequirePage(entity.RoleBodegero), panelHandler.Bodega)
	app.Get("/cliente", guard.RequirePage(entity.RoleCliente), panelHandler.Cliente)
}

// loginLimiter limita los intentos de login por IP.
func loginLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiados intentos de inicio de sesión",
			})
		},
	})
}
