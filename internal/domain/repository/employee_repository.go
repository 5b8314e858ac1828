package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Empleado.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) (int64, error)
	// GetByUsuario devuelve nil, nil si no existe.
	GetByUsuario(ctx context.Context, usuario string) (*entity.Employee, error)
	UsuarioTaken(ctx context.Context, usuario string) (bool, error)
}
