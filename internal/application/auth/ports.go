package auth

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// SessionStore emite y valida tokens de sesión opacos.
type SessionStore interface {
	// Create guarda la sesión y devuelve su token.
	Create(ctx context.Context, s entity.Session) (string, error)
	// Get devuelve nil, nil si el token no corresponde a una sesión vigente.
	Get(ctx context.Context, token string) (*entity.Session, error)
	// Destroy invalida el token. Un token desconocido no es error.
	Destroy(ctx context.Context, token string) error
}
