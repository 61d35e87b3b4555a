package usecase

import (
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"
)

// CreateCartUseCase caso de uso para abrir una sesión de checkout
type CreateCartUseCase struct {
	sessions *cache.CartSessionCache
}

// NewCreateCartUseCase crea una nueva instancia del caso de uso
func NewCreateCartUseCase(sessions *cache.CartSessionCache) *CreateCartUseCase {
	return &CreateCartUseCase{sessions: sessions}
}

// Execute crea un carrito vacío y lo registra como sesión en curso
func (uc *CreateCartUseCase) Execute(customerType string) (*entity.Cart, error) {
	cart, err := entity.NewCart(entity.CustomerType(customerType))
	if err != nil {
		return nil, err
	}

	uc.sessions.Put(cart)
	return cart, nil
}
