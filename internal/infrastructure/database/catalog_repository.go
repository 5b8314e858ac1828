package database

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lectura de los catálogos fijos.
type CatalogRepo struct {
	r runner
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(db *DB) *CatalogRepo {
	return &CatalogRepo{r: runner{q: db.SQL, d: db.Dialect}}
}

// PaymentMethods lista los métodos de pago por tipo.
func (r *CatalogRepo) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	const query = "SELECT `ID_Metodo`, `Tipo de pago` FROM `Metodo de pago` ORDER BY `Tipo de pago`"
	rows, err := r.r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("metodos de pago: %w", err)
	}
	defer rows.Close()

	out := make([]entity.PaymentMethod, 0)
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Tipo); err != nil {
			return nil, fmt.Errorf("metodos de pago scan: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ProductTypes lista los tipos de producto por nombre.
func (r *CatalogRepo) ProductTypes(ctx context.Context) ([]entity.ProductType, error) {
	const query = "SELECT `ID_Tipo_Producto`, `Nombre` FROM `Tipo_Producto` ORDER BY `Nombre`"
	rows, err := r.r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("tipos de producto: %w", err)
	}
	defer rows.Close()

	out := make([]entity.ProductType, 0)
	for rows.Next() {
		var t entity.ProductType
		if err := rows.Scan(&t.ID, &t.Nombre); err != nil {
			return nil, fmt.Errorf("tipos de producto scan: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
