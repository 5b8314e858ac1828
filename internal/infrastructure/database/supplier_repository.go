package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository.
type SupplierRepo struct {
	r runner
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(db *DB) *SupplierRepo {
	return &SupplierRepo{r: runner{q: db.SQL, d: db.Dialect}}
}

// Create inserta un proveedor. Direccion y Email vacíos se guardan como NULL.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) (int64, error) {
	const query = "INSERT INTO `Proveedor` (`Nombre`, `Telefono`, `Direccion`, `Email`) VALUES (?, ?, ?, ?)"
	id, err := r.r.insert(ctx, query, "ID_Proveedor", s.Nombre, s.Telefono, nullString(s.Direccion), nullString(s.Email))
	if err != nil {
		return 0, fmt.Errorf("insert proveedor: %w", err)
	}
	return id, nil
}

// List devuelve los proveedores ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]entity.Supplier, error) {
	const query = "SELECT `ID_Proveedor`, `Nombre`, `Telefono`, `Direccion`, `Email` FROM `Proveedor` ORDER BY `Nombre`, `ID_Proveedor`"
	rows, err := r.r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Supplier, 0)
	for rows.Next() {
		var (
			s          entity.Supplier
			dir, email sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Telefono, &dir, &email); err != nil {
			return nil, fmt.Errorf("list proveedores scan: %w", err)
		}
		s.Direccion, s.Email = dir.String, email.String
		out = append(out, s)
	}
	return out, rows.Err()
}
