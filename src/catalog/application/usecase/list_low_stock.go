package usecase

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/port"
)

// ListLowStockUseCase caso de uso para listar productos con stock bajo
type ListLowStockUseCase struct {
	products port.ProductRepository
}

// NewListLowStockUseCase crea una nueva instancia del caso de uso
func NewListLowStockUseCase(products port.ProductRepository) *ListLowStockUseCase {
	return &ListLowStockUseCase{products: products}
}

// Execute retorna los productos en o por debajo de su stock mínimo
func (uc *ListLowStockUseCase) Execute(ctx context.Context) ([]*entity.Product, error) {
	return uc.products.ListLowStock(ctx)
}
