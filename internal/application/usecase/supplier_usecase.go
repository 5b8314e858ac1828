package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// SupplierUseCase alta y listado de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor. Nombre y Telefono son obligatorios aun después de recortar espacios.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (int64, error) {
	s := &entity.Supplier{
		Nombre:    strings.TrimSpace(in.Nombre),
		Telefono:  strings.TrimSpace(in.Telefono),
		Direccion: strings.TrimSpace(in.Direccion),
		Email:     strings.TrimSpace(in.Email),
	}
	var missing []string
	if s.Nombre == "" {
		missing = append(missing, "name")
	}
	if s.Telefono == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return 0, domain.NewValidationError(missing...)
	}
	return uc.repo.Create(ctx, s)
}

// List proveedores ordenados por nombre.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Nombre, Phone: s.Telefono, Address: s.Direccion, Email: s.Email})
	}
	return out, nil
}
