package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// PanelHandler paneles por rol y páginas de aterrizaje del modo página.
type PanelHandler struct {
	base
	clients *usecase.ClientUseCase
}

// NewPanelHandler construye el handler. clients alimenta el panel del cliente con sus compras.
func NewPanelHandler(clients *usecase.ClientUseCase, cfg HandlerConfig) *PanelHandler {
	return &PanelHandler{base: newBase(cfg, "panels"), clients: clients}
}

var panelLinks = map[entity.Role][]dto.PanelLink{
	entity.RoleAdmin: {
		{Rel: "proveedores", Href: "/api/suppliers"},
		{Rel: "productos", Href: "/api/products"},
		{Rel: "tipos-producto", Href: "/api/product-types"},
		{Rel: "metodos-pago", Href: "/api/payment-methods"},
	},
	entity.RoleBodegero: {
		{Rel: "productos", Href: "/api/products"},
		{Rel: "proveedores", Href: "/api/suppliers"},
	},
	entity.RoleCliente: {
		{Rel: "metodos-pago", Href: "/api/payment-methods"},
	},
}

// Admin GET /admin
func (h *PanelHandler) Admin(c *fiber.Ctx) error {
	return c.JSON(h.panel(GetRequestContext(c).Session))
}

// Bodega GET /bodega
func (h *PanelHandler) Bodega(c *fiber.Ctx) error {
	return c.JSON(h.panel(GetRequestContext(c).Session))
}

// Cliente GET /cliente. Incluye las compras del propio cliente.
func (h *PanelHandler) Cliente(c *fiber.Ctx) error {
	sess := GetRequestContext(c).Session
	ctx, cancel := h.ctx(c)
	defer cancel()

	purchases, err := h.clients.Purchases(ctx, sess, sess.ID)
	if err != nil {
		return h.fail(c, err)
	}
	out := h.panel(sess)
	out.Purchases = purchases
	return c.JSON(out)
}

func (h *PanelHandler) panel(s entity.Session) dto.PanelResponse {
	links := panelLinks[s.Role]
	if s.Role == entity.RoleCliente {
		links = append([]dto.PanelLink{
			{Rel: "compras", Href: "/api/clients/" + strconv.FormatInt(s.ID, 10) + "/purchases"},
		}, links...)
	}
	return dto.PanelResponse{
		Panel:    s.Role.String(),
		Greeting: "Hola, " + s.Name,
		Links:    links,
	}
}

// Login GET /login
func (h *PanelHandler) Login(c *fiber.Ctx) error {
	return c.JSON(dto.LandingResponse{Motivo: c.Query("motivo")})
}

// Unauthorized GET /no-autorizado
func (h *PanelHandler) Unauthorized(c *fiber.Ctx) error {
	return c.JSON(dto.LandingResponse{Motivo: c.Query("motivo")})
}
