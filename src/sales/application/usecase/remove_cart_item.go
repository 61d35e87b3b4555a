package usecase

import (
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"

	"github.com/google/uuid"
)

// RemoveCartItemUseCase caso de uso para sacar un producto del carrito
type RemoveCartItemUseCase struct {
	sessions *cache.CartSessionCache
}

// NewRemoveCartItemUseCase crea una nueva instancia del caso de uso
func NewRemoveCartItemUseCase(sessions *cache.CartSessionCache) *RemoveCartItemUseCase {
	return &RemoveCartItemUseCase{sessions: sessions}
}

// Execute saca el producto del carrito de la sesión
func (uc *RemoveCartItemUseCase) Execute(sessionID, productID uuid.UUID) error {
	return uc.sessions.WithCart(sessionID, func(cart *entity.Cart) error {
		return cart.RemoveItem(productID)
	})
}
