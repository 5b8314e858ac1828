package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/textnorm"
)

// dummyHash se compara cuando el usuario no existe para que la respuesta tarde lo mismo.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("tienda-api"), bcrypt.DefaultCost)

// AuthUseCase casos de uso de autenticación: login, logout y sesión actual.
type AuthUseCase struct {
	employees repository.EmployeeRepository
	clients   repository.ClientRepository
	store     SessionStore
	gate      *Gate
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employees repository.EmployeeRepository, clients repository.ClientRepository, store SessionStore, gate *Gate) *AuthUseCase {
	return &AuthUseCase{employees: employees, clients: clients, store: store, gate: gate}
}

// Login verifica usuario/contraseña (primero empleados, luego clientes), crea la sesión y retorna su token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario := textnorm.Username(in.Usuario)

	sess, hash, err := uc.lookup(ctx, usuario)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Contrasena))
		return nil, domain.ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrInvalidLogin
	}

	token, err := uc.store.Create(ctx, *sess)
	if err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}
	return &dto.LoginResponse{Session: *sess, Token: token}, nil
}

func (uc *AuthUseCase) lookup(ctx context.Context, usuario string) (*entity.Session, string, error) {
	emp, err := uc.employees.GetByUsuario(ctx, usuario)
	if err != nil {
		return nil, "", err
	}
	if emp != nil {
		return &entity.Session{ID: emp.ID, Role: emp.Role, Name: emp.Nombre}, emp.PasswordHash, nil
	}
	cli, err := uc.clients.GetByUsuario(ctx, usuario)
	if err != nil {
		return nil, "", err
	}
	if cli != nil {
		return &entity.Session{ID: cli.ID, Role: entity.RoleCliente, Name: cli.FullName()}, cli.PasswordHash, nil
	}
	return nil, "", nil
}

// Logout invalida el token. Sin token no hay nada que hacer.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.store.Destroy(ctx, token); err != nil {
		return fmt.Errorf("destruir sesión: %w", err)
	}
	return nil
}

// Current devuelve la sesión del token o nil si no hay una vigente.
func (uc *AuthUseCase) Current(ctx context.Context, token string) *entity.Session {
	sess, err := uc.gate.Authorize(ctx, token)
	if err != nil {
		return nil
	}
	return &sess
}
