package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	catalogEntity "github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	catalogPort "github.com/EnzoManrique/TrailerApp/src/catalog/domain/port"
	promotionUsecase "github.com/EnzoManrique/TrailerApp/src/promotion/application/usecase"
	promotionEntity "github.com/EnzoManrique/TrailerApp/src/promotion/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/application/response"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/port"
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"
	"github.com/EnzoManrique/TrailerApp/src/shared/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommitSaleUseCase caso de uso para confirmar una venta: convierte el carrito
// de una sesión en una venta persistida, con sus renglones y los descuentos de
// stock, todo o nada.
type CommitSaleUseCase struct {
	sessions         *cache.CartSessionCache
	products         catalogPort.ProductRepository
	activePromotions *promotionUsecase.ListActivePromotionsUseCase
	sales            port.SaleRepository
}

// NewCommitSaleUseCase crea una nueva instancia del caso de uso
func NewCommitSaleUseCase(
	sessions *cache.CartSessionCache,
	products catalogPort.ProductRepository,
	activePromotions *promotionUsecase.ListActivePromotionsUseCase,
	sales port.SaleRepository,
) *CommitSaleUseCase {
	return &CommitSaleUseCase{
		sessions:         sessions,
		products:         products,
		activePromotions: activePromotions,
		sales:            sales,
	}
}

// Execute confirma la venta de la sesión:
// 1. Rechaza carritos vacíos antes de tocar ningún store
// 2. Revalida cada cantidad contra el stock ACTUAL (pudo cambiar desde que se armó el carrito)
// 3. Re-evalúa promociones contra el set vigente del repositorio, no contra el cache
// 4. Persiste venta + renglones + descuentos de stock en una transacción
// 5. Descarta la sesión y devuelve el comprobante
// Ante cualquier falla el carrito queda intacto para corregir y reintentar.
// Todo corre bajo el mutex de la sesión: un commit en curso bloquea cualquier
// otra operación sobre el mismo carrito hasta resolverse.
func (uc *CommitSaleUseCase) Execute(ctx context.Context, sessionID uuid.UUID) (*response.SaleReceiptResponse, error) {
	var receipt *response.SaleReceiptResponse
	err := uc.sessions.WithCart(sessionID, func(cart *entity.Cart) error {
		var commitErr error
		receipt, commitErr = uc.commit(ctx, sessionID, cart)
		return commitErr
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (uc *CommitSaleUseCase) commit(ctx context.Context, sessionID uuid.UUID, cart *entity.Cart) (*response.SaleReceiptResponse, error) {
	if cart.IsEmpty() {
		metrics.SaleCommitFailures.WithLabelValues("empty_cart").Inc()
		return nil, entity.ErrEmptyCart
	}

	log.Printf("🛒 Committing sale - Session: %s, Items: %d, Customer: %s",
		sessionID, len(cart.Items), cart.CustomerType)

	// Revalidación de stock contra el catálogo vigente
	for i := range cart.Items {
		item := &cart.Items[i]

		product, err := uc.products.GetByID(ctx, item.Product.ID)
		if err != nil {
			if errors.Is(err, catalogEntity.ErrProductNotFound) {
				return nil, err
			}
			return nil, &entity.PersistenceError{Op: "stock revalidation", Err: err}
		}

		if !product.IsSellable() || item.Quantity > product.Stock {
			available := product.Stock
			if !product.IsSellable() {
				available = 0
			}
			log.Printf("❌ Stock rejected for product %s: requested %d, available %d",
				product.Name, item.Quantity, available)
			metrics.SaleCommitFailures.WithLabelValues("insufficient_stock").Inc()
			return nil, &catalogEntity.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   item.Quantity,
				Available:   available,
			}
		}
	}

	// Re-evaluar promociones contra el set vigente
	activePromotions, err := uc.activePromotions.Execute(ctx)
	if err != nil {
		return nil, &entity.PersistenceError{Op: "loading active promotions", Err: err}
	}
	winner := promotionEntity.EvaluateBestPromotion(cart.Lines(), activePromotions)

	discount := decimal.Zero
	var promotionID *uuid.UUID
	if winner != nil {
		discount = winner.Discount
		promotionID = &winner.Promotion.ID
		log.Printf("🏷️  Applying promotion %q: discount %s", winner.Promotion.Name, discount)
	}

	// Armar el aggregate: cada renglón congela el precio unitario del carrito
	items := make([]entity.SaleLineItem, 0, len(cart.Items))
	for i := range cart.Items {
		item, err := entity.NewSaleLineItem(cart.Items[i].Product.ID, cart.Items[i].Quantity, cart.Items[i].UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("error creating sale line item: %w", err)
		}
		items = append(items, *item)
	}

	sale, err := entity.NewSale(items, cart.CustomerType, discount, promotionID)
	if err != nil {
		return nil, fmt.Errorf("error creating sale: %w", err)
	}

	// Persistir: venta + renglones + stock en una única transacción
	if err := uc.sales.Create(ctx, sale); err != nil {
		var stockErr *catalogEntity.InsufficientStockError
		if errors.As(err, &stockErr) {
			// Una venta concurrente ganó el stock entre la revalidación y el commit
			metrics.SaleCommitFailures.WithLabelValues("insufficient_stock").Inc()
			return nil, stockErr
		}
		log.Printf("❌ Sale persistence failed for session %s: %v", sessionID, err)
		metrics.SaleCommitFailures.WithLabelValues("persistence").Inc()
		return nil, &entity.PersistenceError{Op: "sale creation", Err: err}
	}

	// La sesión terminó: el carrito se descarta
	uc.sessions.Delete(sessionID)

	metrics.SalesCommitted.WithLabelValues(string(cart.CustomerType)).Inc()
	if winner != nil {
		metrics.PromotionsApplied.Inc()
	}

	log.Printf("✅ Sale committed: ID=%s, Total=%s, Items=%d", sale.ID, sale.Total, len(sale.Items))

	return buildReceipt(cart, sale, winner), nil
}

// buildReceipt arma el comprobante listo para imprimir
func buildReceipt(cart *entity.Cart, sale *entity.Sale, winner *promotionEntity.ApplicablePromotion) *response.SaleReceiptResponse {
	items := make([]response.SaleReceiptItem, 0, len(sale.Items))
	subtotal := decimal.Zero
	for i := range sale.Items {
		lineItem := &sale.Items[i]
		subtotal = subtotal.Add(lineItem.Subtotal())

		// El nombre sale del snapshot del carrito, no se persiste en el renglón
		var productName string
		for j := range cart.Items {
			if cart.Items[j].Product.ID == lineItem.ProductID {
				productName = cart.Items[j].Product.Name
				break
			}
		}

		items = append(items, response.SaleReceiptItem{
			ProductID:   lineItem.ProductID,
			ProductName: productName,
			Quantity:    lineItem.Quantity,
			UnitPrice:   lineItem.UnitPrice,
			Subtotal:    lineItem.Subtotal(),
		})
	}

	receipt := &response.SaleReceiptResponse{
		SaleID:       sale.ID,
		Date:         sale.Date,
		CustomerType: string(sale.CustomerType),
		Items:        items,
		Subtotal:     subtotal,
		Discount:     subtotal.Sub(sale.Total),
		Total:        sale.Total,
		AppliedPromo: sale.AppliedPromo,
		PromotionID:  sale.PromotionID,
	}
	if winner != nil {
		receipt.PromotionName = winner.Promotion.Name
	}

	return receipt
}
