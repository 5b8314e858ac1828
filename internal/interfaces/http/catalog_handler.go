package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// CatalogHandler catálogos públicos.
type CatalogHandler struct {
	base
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, cfg HandlerConfig) *CatalogHandler {
	return &CatalogHandler{base: newBase(cfg, "catalogs"), uc: uc}
}

// PaymentMethods godoc
// @Summary      Métodos de pago
// @Tags         catalogs
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [get]
func (h *CatalogHandler) PaymentMethods(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	out, err := h.uc.PaymentMethods(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// ProductTypes godoc
// @Summary      Tipos de producto
// @Tags         catalogs
// @Produce      json
// @Success      200  {array}  dto.ProductTypeResponse
// @Router       /api/product-types [get]
func (h *CatalogHandler) ProductTypes(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	out, err := h.uc.ProductTypes(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}
