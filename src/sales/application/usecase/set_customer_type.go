package usecase

import (
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"

	"github.com/google/uuid"
)

// SetCustomerTypeUseCase caso de uso para cambiar el tipo de cliente de la sesión
type SetCustomerTypeUseCase struct {
	sessions *cache.CartSessionCache
}

// NewSetCustomerTypeUseCase crea una nueva instancia del caso de uso
func NewSetCustomerTypeUseCase(sessions *cache.CartSessionCache) *SetCustomerTypeUseCase {
	return &SetCustomerTypeUseCase{sessions: sessions}
}

// Execute cambia el tipo de cliente y re-precia todo el carrito
func (uc *SetCustomerTypeUseCase) Execute(sessionID uuid.UUID, customerType string) error {
	return uc.sessions.WithCart(sessionID, func(cart *entity.Cart) error {
		return cart.SetCustomerType(entity.CustomerType(customerType))
	})
}
