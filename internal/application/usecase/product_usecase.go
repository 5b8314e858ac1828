package usecase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase consulta del inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List productos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{
			Code:       p.Codigo,
			Name:       p.Nombre,
			Price:      p.Precio.Round(2),
			Stock:      p.Existencia,
			TypeID:     p.TipoID,
			Type:       p.TipoNombre,
			SupplierID: p.ProveedorID,
		})
	}
	return out, nil
}
