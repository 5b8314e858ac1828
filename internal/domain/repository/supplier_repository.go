package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Proveedor.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) (int64, error)
	List(ctx context.Context) ([]entity.Supplier, error)
}
