package usecase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CatalogUseCase catálogos públicos.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// PaymentMethods métodos de pago ordenados por tipo.
func (uc *CatalogUseCase) PaymentMethods(ctx context.Context) ([]dto.PaymentMethodResponse, error) {
	methods, err := uc.repo.PaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, dto.PaymentMethodResponse{ID: m.ID, Type: m.Tipo})
	}
	return out, nil
}

// ProductTypes tipos de producto ordenados por nombre.
func (uc *CatalogUseCase) ProductTypes(ctx context.Context) ([]dto.ProductTypeResponse, error) {
	types, err := uc.repo.ProductTypes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.ProductTypeResponse{ID: t.ID, Name: t.Nombre})
	}
	return out, nil
}
