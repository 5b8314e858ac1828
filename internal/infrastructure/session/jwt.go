package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/config"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

var _ auth.SessionStore = (*JWTStore)(nil)

// JWTStore emite tokens firmados que llevan la sesión completa. No guarda estado:
// Destroy no revoca el token, que sigue siendo válido hasta su expiración.
type JWTStore struct {
	secret string
	issuer string
	ttl    time.Duration
}

// NewJWTStore construye el almacén.
func NewJWTStore(cfg config.JWTConfig, ttl time.Duration) *JWTStore {
	return &JWTStore{secret: cfg.Secret, issuer: cfg.Issuer, ttl: ttl}
}

// Create firma un token con la sesión.
func (s *JWTStore) Create(_ context.Context, sess entity.Session) (string, error) {
	if !sess.Role.Valid() {
		return "", fmt.Errorf("sesión con rol inválido")
	}
	return pkgjwt.Generate(s.secret, s.issuer, sess.ID, sess.Role.String(), sess.Name, s.ttl)
}

// Get valida el token. Firma incorrecta, expiración o un rol desconocido equivalen a sin sesión.
func (s *JWTStore) Get(_ context.Context, token string) (*entity.Session, error) {
	claims, err := pkgjwt.Parse(s.secret, s.issuer, token)
	if err != nil {
		return nil, nil
	}
	role, err := entity.ParseRole(claims.Role)
	if err != nil {
		return nil, nil
	}
	return &entity.Session{ID: claims.SessionID, Role: role, Name: claims.Name}, nil
}

// Destroy no hace nada; la cookie se borra en el borde HTTP.
func (s *JWTStore) Destroy(context.Context, string) error {
	return nil
}
