package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Producto.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
}
