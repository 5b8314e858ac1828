package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Cliente.
type ClientRepository interface {
	// Create inserta el cliente y devuelve el ID generado. ErrDuplicate si el usuario ya existe.
	Create(ctx context.Context, client *entity.Client) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// GetByUsuario devuelve nil, nil si no existe.
	GetByUsuario(ctx context.Context, usuario string) (*entity.Client, error)
	UsuarioTaken(ctx context.Context, usuario string) (bool, error)
	// Purchases lista los tickets del cliente con su total, del más reciente al más antiguo.
	Purchases(ctx context.Context, clientID int64) ([]entity.Purchase, error)
}
