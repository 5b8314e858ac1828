package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository.
type ProductRepo struct {
	r runner
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *DB) *ProductRepo {
	return &ProductRepo{r: runner{q: db.SQL, d: db.Dialect}}
}

// List devuelve el inventario con el nombre del tipo resuelto, ordenado por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	const query = "SELECT p.`Codigo_Producto`, p.`Nombre`, p.`Precio`, p.`Existencia`, p.`ID_Tipo_Producto`, tp.`Nombre`, p.`ID_Proveedor` " +
		"FROM `Producto` p " +
		"JOIN `Tipo_Producto` tp ON tp.`ID_Tipo_Producto` = p.`ID_Tipo_Producto` " +
		"ORDER BY p.`Nombre`, p.`Codigo_Producto`"
	rows, err := r.r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Product, 0)
	for rows.Next() {
		var (
			p         entity.Product
			proveedor sql.NullInt64
		)
		if err := rows.Scan(&p.Codigo, &p.Nombre, &p.Precio, &p.Existencia, &p.TipoID, &p.TipoNombre, &proveedor); err != nil {
			return nil, fmt.Errorf("list productos scan: %w", err)
		}
		p.ProveedorID = nullInt64Ptr(proveedor)
		out = append(out, p)
	}
	return out, rows.Err()
}
