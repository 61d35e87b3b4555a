package usecase

import (
	"context"

	catalogEntity "github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	catalogPort "github.com/EnzoManrique/TrailerApp/src/catalog/domain/port"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"

	"github.com/google/uuid"
)

// AddCartItemUseCase caso de uso para agregar un producto al carrito
type AddCartItemUseCase struct {
	sessions *cache.CartSessionCache
	products catalogPort.ProductRepository
}

// NewAddCartItemUseCase crea una nueva instancia del caso de uso
func NewAddCartItemUseCase(sessions *cache.CartSessionCache, products catalogPort.ProductRepository) *AddCartItemUseCase {
	return &AddCartItemUseCase{
		sessions: sessions,
		products: products,
	}
}

// Execute lee el producto del catálogo (stock vigente incluido) y lo agrega al
// carrito de la sesión. Productos dados de baja no se pueden vender.
func (uc *AddCartItemUseCase) Execute(ctx context.Context, sessionID, productID uuid.UUID, quantity int) error {
	return uc.sessions.WithCart(sessionID, func(cart *entity.Cart) error {
		product, err := uc.products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if !product.IsSellable() {
			return catalogEntity.ErrProductNotFound
		}

		return cart.AddItem(*product, quantity)
	})
}
