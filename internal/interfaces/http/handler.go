package http

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// HandlerConfig opciones comunes a todos los handlers.
type HandlerConfig struct {
	Log          *logger.Logger
	DebugErrors  bool          // incluir el error interno en "detail" (solo desarrollo)
	QueryTimeout time.Duration // plazo de cada petición hacia la base
}

// base concentra el mapeo de errores, el binding de entrada y el plazo por petición.
type base struct {
	log     *logger.Logger
	debug   bool
	timeout time.Duration
}

func newBase(cfg HandlerConfig, component string) base {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	return base{log: log.Named(component), debug: cfg.DebugErrors, timeout: cfg.QueryTimeout}
}

// ctx devuelve el contexto de la petición con el plazo configurado.
func (b base) ctx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), b.timeout)
}

var publicMessages = []error{
	domain.ErrInvalidLogin,
	domain.ErrUnauthenticated,
	domain.ErrUnauthorized,
	domain.ErrDuplicate,
	domain.ErrNotFound,
}

// fail responde err según su ErrorKind. Los errores de almacenamiento se registran con el request id
// y solo exponen el texto original con DebugErrors.
func (b base) fail(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	body := dto.ErrorResponse{Code: kind.String(), Message: "error interno del servidor"}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		body.Message = verr.Error()
		body.Fields = verr.Fields
	case kind == domain.KindStorage:
		b.log.Error().Err(err).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("fallo al atender la petición")
		if b.debug {
			body.Detail = err.Error()
		}
	default:
		for _, sentinel := range publicMessages {
			if errors.Is(err, sentinel) {
				body.Message = sentinel.Error()
				break
			}
		}
	}
	return c.Status(statusFor(kind)).JSON(body)
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case domain.KindUnauthorized:
		return fiber.StatusForbidden
	case domain.KindValidation, domain.KindDuplicate:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// bind decodifica el cuerpo (form o JSON) en out y aplica las reglas validate.
// Un cuerpo vacío no es error: la validación enumera los campos requeridos que faltan.
func (b base) bind(c *fiber.Ctx, out any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(out); err != nil {
			return domain.NewValidationError("body")
		}
	}
	return validateStruct(out)
}

// paramID lee un parámetro de ruta numérico y positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name)
	}
	return id, nil
}
