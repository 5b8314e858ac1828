package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/textnorm"
)

// ClientUseCase registro de clientes y consulta de sus compras.
type ClientUseCase struct {
	repo     repository.ClientRepository
	tx       AccountsTxRunner
	hashCost int
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, tx AccountsTxRunner) *ClientUseCase {
	return &ClientUseCase{repo: repo, tx: tx, hashCost: bcrypt.DefaultCost}
}

// Register crea un cliente con la contraseña hasheada y devuelve su ID.
// El usuario no puede coincidir con otro cliente ni con un empleado. La consulta previa es un atajo;
// el índice único de Usuario decide ante registros simultáneos (ErrDuplicate en ambos casos).
func (uc *ClientUseCase) Register(ctx context.Context, in dto.RegisterClientRequest) (*dto.RegisterClientResponse, error) {
	usuario := textnorm.Username(in.Usuario)
	if usuario == "" {
		return nil, domain.NewValidationError("usuario")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash contraseña: %w", err)
	}
	client := &entity.Client{
		Nombre:          strings.TrimSpace(in.Nombre),
		ApellidoPaterno: strings.TrimSpace(in.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(in.ApellidoMaterno),
		Telefono:        strings.TrimSpace(in.Telefono),
		Direccion:       strings.TrimSpace(in.Direccion),
		Usuario:         usuario,
		PasswordHash:    string(hash),
	}

	var id int64
	err = uc.tx.RunAccounts(ctx, func(clients repository.ClientRepository, employees repository.EmployeeRepository) error {
		taken, err := clients.UsuarioTaken(ctx, usuario)
		if err != nil {
			return err
		}
		if !taken {
			if taken, err = employees.UsuarioTaken(ctx, usuario); err != nil {
				return err
			}
		}
		if taken {
			return domain.ErrDuplicate
		}
		id, err = clients.Create(ctx, client)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterClientResponse{Success: true, ClientID: id}, nil
}

// Purchases lista las compras del cliente. Un cliente solo puede consultar las suyas.
// Devuelve ErrNotFound si el cliente no existe y una lista vacía si no tiene tickets.
func (uc *ClientUseCase) Purchases(ctx context.Context, sess entity.Session, clientID int64) ([]dto.PurchaseResponse, error) {
	if clientID <= 0 {
		return nil, domain.NewValidationError("id")
	}
	if !auth.CanReadClient(sess, clientID) {
		return nil, domain.ErrUnauthorized
	}
	ok, err := uc.repo.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	purchases, err := uc.repo.Purchases(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, dto.PurchaseResponse{
			TicketID:      p.TicketID,
			Date:          p.Fecha,
			PaymentMethod: p.MetodoPago,
			Total:         p.Total.Round(2),
		})
	}
	return out, nil
}
