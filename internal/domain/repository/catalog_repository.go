package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// CatalogRepository catálogos de solo lectura: métodos de pago y tipos de producto.
type CatalogRepository interface {
	// PaymentMethods ordenados por tipo.
	PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
	// ProductTypes ordenados por nombre.
	ProductTypes(ctx context.Context) ([]entity.ProductType, error)
}
