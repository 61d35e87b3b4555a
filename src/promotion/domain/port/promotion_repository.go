package port

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/promotion/domain/entity"

	"github.com/google/uuid"
)

// PromotionRepository define el contrato de lectura sobre promociones
type PromotionRepository interface {
	// ListActive retorna las promociones activas en orden estable (nombre, id)
	ListActive(ctx context.Context) ([]*entity.Promotion, error)

	// GetRequirements retorna los requisitos (producto, cantidad) de una promoción
	GetRequirements(ctx context.Context, promotionID uuid.UUID) ([]entity.PromotionRequirement, error)
}
