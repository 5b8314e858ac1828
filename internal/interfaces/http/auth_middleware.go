package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Locals keys en Fiber.
const (
	LocalRequestContext = "request_context"
	LocalRequestID      = "requestid"
)

// RequestContext identifica a quien llama durante una petición. Lo coloca el Guard y los handlers solo lo leen.
type RequestContext struct {
	Session   entity.Session
	RequestID string
}

// GetRequestContext devuelve el RequestContext de la petición (después de RequireSession o RequirePage).
func GetRequestContext(c *fiber.Ctx) RequestContext {
	rc, _ := c.Locals(LocalRequestContext).(RequestContext)
	return rc
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalRequestID).(string)
	return id
}

// Authorizer lo implementa *auth.Gate.
type Authorizer interface {
	Authorize(ctx context.Context, token string, required ...entity.Role) (entity.Session, error)
}

// Guard compone el gate de autorización como middleware, una vez por grupo de rutas.
type Guard struct {
	gate       Authorizer
	cookieName string
	errors     base
}

// NewGuard construye el guard. El token se lee de la cookie cookieName y del header Bearer.
func NewGuard(gate Authorizer, cookieName string, cfg HandlerConfig) *Guard {
	return &Guard{gate: gate, cookieName: cookieName, errors: newBase(cfg, "guard")}
}

// Tokens devuelve los tokens candidatos de la petición: primero la cookie, luego el header Bearer.
func (g *Guard) Tokens(c *fiber.Ctx) []string {
	var out []string
	if tok := c.Cookies(g.cookieName); tok != "" {
		out = append(out, tok)
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		if tok := strings.TrimSpace(parts[1]); tok != "" && (len(out) == 0 || out[0] != tok) {
			out = append(out, tok)
		}
	}
	return out
}

// authorize prueba cada token candidato. Una cookie vencida no oculta un Bearer vigente.
// Si algún token resuelve una sesión sin el rol pedido, el error es ErrUnauthorized.
func (g *Guard) authorize(c *fiber.Ctx, roles []entity.Role) (entity.Session, error) {
	err := domain.ErrUnauthenticated
	for _, tok := range g.Tokens(c) {
		sess, aerr := g.gate.Authorize(c.UserContext(), tok, roles...)
		if aerr == nil {
			return sess, nil
		}
		if errors.Is(aerr, domain.ErrUnauthorized) {
			err = aerr
		}
	}
	return entity.Session{}, err
}

// RequireSession protege rutas de la API: 401 sin sesión válida, 403 si el rol no está en roles.
// Sin roles basta con cualquier sesión.
func (g *Guard) RequireSession(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := g.authorize(c, roles)
		if err != nil {
			return g.errors.fail(c, err)
		}
		c.Locals(LocalRequestContext, RequestContext{Session: sess, RequestID: requestID(c)})
		return c.Next()
	}
}

// RequirePage protege páginas: redirige a /login o /no-autorizado con el motivo.
func (g *Guard) RequirePage(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := g.authorize(c, roles)
		if err != nil {
			return c.Redirect(auth.Redirect(err), fiber.StatusFound)
		}
		c.Locals(LocalRequestContext, RequestContext{Session: sess, RequestID: requestID(c)})
		return c.Next()
	}
}
