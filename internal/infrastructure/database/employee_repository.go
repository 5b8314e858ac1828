package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository.
type EmployeeRepo struct {
	r runner
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(db *DB) *EmployeeRepo {
	return &EmployeeRepo{r: runner{q: db.SQL, d: db.Dialect}}
}

// Create persiste un empleado. Solo admin y bodegero son roles de empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) (int64, error) {
	if !e.Role.IsStaff() {
		return 0, domain.NewValidationError("rol")
	}
	const query = "INSERT INTO `Empleado` (`Nombre`, `Usuario`, `Contrasena`, `Rol`) VALUES (?, ?, ?, ?)"
	id, err := r.r.insert(ctx, query, "ID_Empleado", e.Nombre, e.Usuario, e.PasswordHash, e.Role.String())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert empleado: %w", err)
	}
	return id, nil
}

// GetByUsuario obtiene un empleado por usuario (ya normalizado).
func (r *EmployeeRepo) GetByUsuario(ctx context.Context, usuario string) (*entity.Employee, error) {
	const query = "SELECT `ID_Empleado`, `Nombre`, `Usuario`, `Contrasena`, `Rol` FROM `Empleado` WHERE `Usuario` = ?"
	var (
		e   entity.Employee
		rol string
	)
	err := r.r.queryRow(ctx, query, usuario).Scan(&e.ID, &e.Nombre, &e.Usuario, &e.PasswordHash, &rol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado by usuario: %w", err)
	}
	e.Role, err = entity.ParseRole(rol)
	if err != nil || !e.Role.IsStaff() {
		return nil, fmt.Errorf("empleado %d: rol persistido inválido %q", e.ID, rol)
	}
	return &e, nil
}

// UsuarioTaken informa si el usuario ya pertenece a un empleado.
func (r *EmployeeRepo) UsuarioTaken(ctx context.Context, usuario string) (bool, error) {
	ok, err := r.r.exists(ctx, "Empleado", "Usuario", usuario)
	if err != nil {
		return false, fmt.Errorf("usuario empleado: %w", err)
	}
	return ok, nil
}
