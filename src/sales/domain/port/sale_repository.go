package port

import (
	"context"

	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
)

// SaleRepository define el contrato para persistir ventas confirmadas.
// Append-only desde la perspectiva del motor: sin updates, sin deletes.
type SaleRepository interface {
	// Create persiste la venta, sus renglones y el descuento de stock de cada
	// producto vendido como una única unidad: o quedan visibles los tres
	// efectos, o ninguno. Un descuento de stock rechazado se reporta como
	// InsufficientStockError del producto ofendido.
	Create(ctx context.Context, sale *entity.Sale) error

	// List retorna las ventas ordenadas de la más reciente a la más vieja
	List(ctx context.Context) ([]*entity.Sale, error)
}
