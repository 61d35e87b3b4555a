package usecase

import (
	promotionEntity "github.com/EnzoManrique/TrailerApp/src/promotion/domain/entity"
	promotionCache "github.com/EnzoManrique/TrailerApp/src/promotion/infrastructure/cache"
	"github.com/EnzoManrique/TrailerApp/src/sales/application/response"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetCartSummaryUseCase caso de uso para el total en vivo de la caja:
// items, subtotal, mejor promoción aplicable y total final
type GetCartSummaryUseCase struct {
	sessions   *cache.CartSessionCache
	promotions *promotionCache.PromotionCache
}

// NewGetCartSummaryUseCase crea una nueva instancia del caso de uso
func NewGetCartSummaryUseCase(
	sessions *cache.CartSessionCache,
	promotions *promotionCache.PromotionCache,
) *GetCartSummaryUseCase {
	return &GetCartSummaryUseCase{
		sessions:   sessions,
		promotions: promotions,
	}
}

// Execute evalúa las promociones cacheadas contra el carrito y arma el resumen
func (uc *GetCartSummaryUseCase) Execute(sessionID uuid.UUID) (*response.CartSummaryResponse, error) {
	var summary *response.CartSummaryResponse
	err := uc.sessions.WithCart(sessionID, func(cart *entity.Cart) error {
		winner := promotionEntity.EvaluateBestPromotion(cart.Lines(), uc.promotions.Active())
		summary = BuildCartSummary(cart, winner)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// BuildCartSummary arma el resumen del carrito con una promoción ya evaluada
func BuildCartSummary(cart *entity.Cart, winner *promotionEntity.ApplicablePromotion) *response.CartSummaryResponse {
	items := make([]response.CartItemSummary, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, response.CartItemSummary{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		})
	}

	subtotal := cart.Subtotal()
	discount := decimal.Zero

	var promotion *response.AppliedPromotionSummary
	if winner != nil {
		discount = winner.Discount
		promotion = &response.AppliedPromotionSummary{
			PromotionID:        winner.Promotion.ID,
			Name:               winner.Promotion.Name,
			DiscountPercentage: winner.Promotion.DiscountPercentage,
			Discount:           winner.Discount,
		}
	}

	return &response.CartSummaryResponse{
		SessionID:    cart.SessionID,
		CustomerType: string(cart.CustomerType),
		Items:        items,
		Subtotal:     subtotal,
		Promotion:    promotion,
		Discount:     discount,
		Total:        subtotal.Sub(discount),
	}
}
