package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// New construye el almacén configurado en SESSION_DRIVER. Con redis devuelve también el cliente para cerrarlo al salir.
func New(ctx context.Context, cfg *config.Config) (auth.SessionStore, *redis.Client, error) {
	switch cfg.Session.Driver {
	case config.SessionRedis:
		client, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(client, cfg.Session.TTL), client, nil
	case config.SessionJWT:
		return NewJWTStore(cfg.JWT, cfg.Session.TTL), nil, nil
	}
	return nil, nil, fmt.Errorf("session: driver no soportado %q", cfg.Session.Driver)
}
