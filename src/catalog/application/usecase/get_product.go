package usecase

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/port"

	"github.com/google/uuid"
)

// GetProductUseCase caso de uso para obtener un producto por id
type GetProductUseCase struct {
	products port.ProductRepository
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(products port.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{products: products}
}

// Execute retorna el producto, o ErrProductNotFound
func (uc *GetProductUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return uc.products.GetByID(ctx, id)
}
