package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ProductHandler consulta del inventario.
type ProductHandler struct {
	base
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, cfg HandlerConfig) *ProductHandler {
	return &ProductHandler{base: newBase(cfg, "products"), uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	out, err := h.uc.List(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}
