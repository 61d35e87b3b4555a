package usecase

import (
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"

	"github.com/google/uuid"
)

// UpdateCartItemUseCase caso de uso para fijar la cantidad de un item del carrito
type UpdateCartItemUseCase struct {
	sessions *cache.CartSessionCache
}

// NewUpdateCartItemUseCase crea una nueva instancia del caso de uso
func NewUpdateCartItemUseCase(sessions *cache.CartSessionCache) *UpdateCartItemUseCase {
	return &UpdateCartItemUseCase{sessions: sessions}
}

// Execute fija la cantidad contra el snapshot de stock del carrito.
// El commit revalida contra el stock vigente de todas formas.
func (uc *UpdateCartItemUseCase) Execute(sessionID, productID uuid.UUID, quantity int) error {
	return uc.sessions.WithCart(sessionID, func(cart *entity.Cart) error {
		return cart.SetQuantity(productID, quantity)
	})
}
