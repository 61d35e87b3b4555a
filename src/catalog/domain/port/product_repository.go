package port

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	domainCriteria "github.com/EnzoManrique/TrailerApp/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// ProductRepository define el contrato de lectura sobre el catálogo.
// El alta/edición de productos es responsabilidad de la app de inventario,
// este servicio solo consume el catálogo.
type ProductRepository interface {
	// GetByID retorna un producto por id, o ErrProductNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Search retorna productos no eliminados según el criteria, con el total sin paginar
	Search(ctx context.Context, criteria domainCriteria.Criteria) ([]*entity.Product, int, error)

	// ListLowStock retorna productos no eliminados con stock igual o menor a su mínimo
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
}
