package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// SaleHandler detalle y PDF de tickets de venta.
type SaleHandler struct {
	base
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, cfg HandlerConfig) *SaleHandler {
	return &SaleHandler{base: newBase(cfg, "sales"), uc: uc}
}

// Detail godoc
// @Summary      Detalle de un ticket de venta
// @Description  Un ticket inexistente responde 200 con ticket null y lines vacío.
// @Tags         sales
// @Produce      json
// @Param        id   path      int  true  "ID_Ticket"
// @Success      200  {object}  dto.SaleDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) Detail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.uc.Detail(ctx, GetRequestContext(c).Session, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Ticket de venta en PDF
// @Tags         sales
// @Produce      application/pdf
// @Param        id   path      int  true  "ID_Ticket"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SaleHandler) PDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	pdf, filename, err := h.uc.TicketPDF(ctx, GetRequestContext(c).Session, id)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
