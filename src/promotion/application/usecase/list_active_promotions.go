package usecase

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/promotion/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/promotion/domain/port"
)

// ListActivePromotionsUseCase caso de uso para listar promociones activas con requisitos.
// Lee siempre del repositorio: lo usa el commit de ventas, que necesita el set vigente.
type ListActivePromotionsUseCase struct {
	promotions port.PromotionRepository
}

// NewListActivePromotionsUseCase crea una nueva instancia del caso de uso
func NewListActivePromotionsUseCase(promotions port.PromotionRepository) *ListActivePromotionsUseCase {
	return &ListActivePromotionsUseCase{promotions: promotions}
}

// Execute retorna las promociones activas con sus requisitos ya cargados
func (uc *ListActivePromotionsUseCase) Execute(ctx context.Context) ([]entity.PromotionWithRequirements, error) {
	active, err := uc.promotions.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.PromotionWithRequirements, 0, len(active))
	for _, promotion := range active {
		requirements, err := uc.promotions.GetRequirements(ctx, promotion.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, entity.PromotionWithRequirements{
			Promotion:    *promotion,
			Requirements: requirements,
		})
	}

	return result, nil
}
