package usecase

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/port"
)

// ListCategoriesUseCase caso de uso para listar categorías
type ListCategoriesUseCase struct {
	categories port.CategoryRepository
}

// NewListCategoriesUseCase crea una nueva instancia del caso de uso
func NewListCategoriesUseCase(categories port.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categories: categories}
}

// Execute retorna todas las categorías
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*entity.Category, error) {
	return uc.categories.List(ctx)
}
