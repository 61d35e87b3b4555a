package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleReceiptItem un renglón del comprobante
type SaleReceiptItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleReceiptResponse DTO listo para imprimir que devuelve el checkout
type SaleReceiptResponse struct {
	SaleID        uuid.UUID         `json:"sale_id"`
	Date          time.Time         `json:"date"`
	CustomerType  string            `json:"customer_type"`
	Items         []SaleReceiptItem `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Discount      decimal.Decimal   `json:"discount"`
	Total         decimal.Decimal   `json:"total"`
	AppliedPromo  bool              `json:"applied_promo"`
	PromotionID   *uuid.UUID        `json:"promotion_id,omitempty"`
	PromotionName string            `json:"promotion_name,omitempty"`
}

// SaleListItem una venta en el historial
type SaleListItem struct {
	SaleID       uuid.UUID       `json:"sale_id"`
	Date         time.Time       `json:"date"`
	Total        decimal.Decimal `json:"total"`
	CustomerType string          `json:"customer_type"`
	AppliedPromo bool            `json:"applied_promo"`
	PromotionID  *uuid.UUID      `json:"promotion_id,omitempty"`
	ItemCount    int             `json:"item_count"`
}
