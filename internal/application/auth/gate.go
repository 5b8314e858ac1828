package auth

import (
	"context"
	"errors"
	"net/url"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// Rutas a las que redirige el modo página.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/no-autorizado"
)

// Motivos legibles que acompañan a la redirección.
const (
	MotivoSinSesion = "Debes iniciar sesión para continuar"
	MotivoSinRol    = "Tu rol no tiene acceso a esta sección"
)

// Gate es el único punto donde se compara el rol de una sesión.
type Gate struct {
	store SessionStore
	log   *logger.Logger
}

// NewGate construye el gate sobre el almacén de sesiones.
func NewGate(store SessionStore, log *logger.Logger) *Gate {
	if log == nil {
		log = logger.Nop()
	}
	return &Gate{store: store, log: log.Named("gate")}
}

// Authorize resuelve la sesión del token y, si se indican roles, exige que la sesión tenga uno de ellos.
// Token vacío, desconocido, corrupto o un fallo del almacén devuelven ErrUnauthenticated.
// Un rol fuera de required devuelve ErrUnauthorized.
func (g *Gate) Authorize(ctx context.Context, token string, required ...entity.Role) (entity.Session, error) {
	if token == "" {
		return entity.Session{}, domain.ErrUnauthenticated
	}
	sess, err := g.store.Get(ctx, token)
	if err != nil {
		g.log.Warn().Err(err).Msg("almacén de sesiones no disponible; se trata como sin sesión")
		return entity.Session{}, domain.ErrUnauthenticated
	}
	if sess == nil || !sess.Role.Valid() {
		return entity.Session{}, domain.ErrUnauthenticated
	}
	if len(required) == 0 {
		return *sess, nil
	}
	for _, r := range required {
		if sess.Role == r {
			return *sess, nil
		}
	}
	return entity.Session{}, domain.ErrUnauthorized
}

// Redirect traduce el resultado de Authorize a la ruta de redirección del modo página.
// Devuelve "" si err es nil o no es un error de acceso.
func Redirect(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return LoginPath + "?motivo=" + url.QueryEscape(MotivoSinSesion)
	case errors.Is(err, domain.ErrUnauthorized):
		return UnauthorizedPath + "?motivo=" + url.QueryEscape(MotivoSinRol)
	}
	return ""
}

// CanReadClient informa si la sesión puede consultar datos del cliente clientID.
// El personal ve a cualquier cliente; un cliente solo a sí mismo.
func CanReadClient(s entity.Session, clientID int64) bool {
	if s.Role.IsStaff() {
		return true
	}
	return s.Role == entity.RoleCliente && s.ID == clientID
}
