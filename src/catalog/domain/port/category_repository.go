package port

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
)

// CategoryRepository define el contrato de lectura sobre categorías
type CategoryRepository interface {
	// List retorna todas las categorías ordenadas por nombre
	List(ctx context.Context) ([]*entity.Category, error)
}
