// Package session implementa los almacenes de sesión: Redis (token opaco) y JWT (token autocontenido).
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/config"
)

var _ auth.SessionStore = (*RedisStore)(nil)

// RedisStore guarda cada sesión como JSON bajo "session:<token>" con expiración.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient crea el cliente y verifica que Redis responde.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewRedisStore construye el almacén. ttl es la vida de cada sesión desde el login.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Create genera un token aleatorio y guarda la sesión.
func (s *RedisStore) Create(ctx context.Context, sess entity.Session) (string, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("serializar sesión: %w", err)
	}
	token := uuid.NewString()
	if err := s.client.Set(ctx, redisKey(token), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("guardar sesión: %w", err)
	}
	return token, nil
}

// Get devuelve la sesión del token. Un token expirado o desconocido devuelve nil, nil;
// un registro que no se puede leer es error.
func (s *RedisStore) Get(ctx context.Context, token string) (*entity.Session, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, nil
	}
	data, err := s.client.Get(ctx, redisKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("sesión corrupta: %w", err)
	}
	return &sess, nil
}

// Destroy elimina la sesión.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKey(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("eliminar sesión: %w", err)
	}
	return nil
}

func redisKey(token string) string {
	return "session:" + token
}
