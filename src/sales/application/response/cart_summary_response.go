package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemSummary un renglón del carrito para mostrar en caja
type CartItemSummary struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// AppliedPromotionSummary la promoción ganadora con su descuento calculado
type AppliedPromotionSummary struct {
	PromotionID        uuid.UUID       `json:"promotion_id"`
	Name               string          `json:"name"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Discount           decimal.Decimal `json:"discount"`
}

// CartSummaryResponse el estado del carrito con los totales en vivo:
// subtotal, mejor promoción aplicable (si hay) y total final
type CartSummaryResponse struct {
	SessionID    uuid.UUID                `json:"session_id"`
	CustomerType string                   `json:"customer_type"`
	Items        []CartItemSummary        `json:"items"`
	Subtotal     decimal.Decimal          `json:"subtotal"`
	Promotion    *AppliedPromotionSummary `json:"promotion,omitempty"`
	Discount     decimal.Decimal          `json:"discount"`
	Total        decimal.Decimal          `json:"total"`
}
