package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// SupplierHandler alta y listado de proveedores.
type SupplierHandler struct {
	base
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, cfg HandlerConfig) *SupplierHandler {
	return &SupplierHandler{base: newBase(cfg, "suppliers"), uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "name y phone obligatorios"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := h.bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	if _, err := h.uc.Create(ctx, in); err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true})
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	out, err := h.uc.List(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}
