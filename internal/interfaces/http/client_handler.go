package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// ClientHandler registro de clientes y consulta de compras.
type ClientHandler struct {
	base
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, cfg HandlerConfig) *ClientHandler {
	return &ClientHandler{base: newBase(cfg, "clients"), uc: uc}
}

// Purchases godoc
// @Summary      Compras de un cliente
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "ID_Cliente"
// @Success      200  {array}   dto.PurchaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/purchases [get]
func (h *ClientHandler) Purchases(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.uc.Purchases(ctx, GetRequestContext(c).Session, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         clients
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.RegisterClientRequest  true  "datos del cliente"
// @Success      201   {object}  dto.RegisterClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/registrations [post]
func (h *ClientHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterClientRequest
	if err := h.bind(c, &in); err != nil {
		return h.fail(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.uc.Register(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    domain.KindDuplicate.String(),
				Message: "el usuario ya está registrado",
				Fields:  []string{"usuario"},
			})
		}
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
