package usecase

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/port"
	domainCriteria "github.com/EnzoManrique/TrailerApp/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// SearchProductsFilters filtros soportados por el selector de productos
type SearchProductsFilters struct {
	Name       string     // Búsqueda parcial por nombre
	CategoryID *uuid.UUID // Filtrar por categoría
	Limit      int
	Offset     int
}

// SearchProductsUseCase caso de uso para listar productos con filtros y paginación
type SearchProductsUseCase struct {
	products port.ProductRepository
}

// NewSearchProductsUseCase crea una nueva instancia del caso de uso
func NewSearchProductsUseCase(products port.ProductRepository) *SearchProductsUseCase {
	return &SearchProductsUseCase{products: products}
}

// Execute arma el criteria y delega la búsqueda en el repositorio
func (uc *SearchProductsUseCase) Execute(ctx context.Context, filters SearchProductsFilters) ([]*entity.Product, int, error) {
	criteriaFilters := domainCriteria.NewFilters()

	if filters.Name != "" {
		criteriaFilters.Add(domainCriteria.NewFilter("nombre", domainCriteria.OpLike, filters.Name))
	}
	if filters.CategoryID != nil {
		criteriaFilters.Add(domainCriteria.NewFilter("categoria_id", domainCriteria.OpEqual, *filters.CategoryID))
	}

	// Paginación con defaults razonables para el selector
	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	criteria := domainCriteria.NewCriteria(
		criteriaFilters,
		domainCriteria.NewOrder("nombre", domainCriteria.ASC),
		&limit,
		&offset,
	)

	return uc.products.Search(ctx, criteria)
}
