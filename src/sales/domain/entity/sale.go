package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale representa una venta confirmada (Aggregate Root). Se crea una única vez
// por checkout y es inmutable desde entonces.
type Sale struct {
	ID           uuid.UUID       `json:"id"`
	Date         time.Time       `json:"date"`
	Total        decimal.Decimal `json:"total"` // Post-descuento
	CustomerType CustomerType    `json:"customer_type"`
	AppliedPromo bool            `json:"applied_promo"`
	PromotionID  *uuid.UUID      `json:"promotion_id"` // NULL si no aplicó promoción
	Items        []SaleLineItem  `json:"items"`
}

// SaleLineItem representa un renglón de la venta, con el precio unitario
// congelado al momento de vender (independiente de cambios de precio futuros)
type SaleLineItem struct {
	ID        uuid.UUID       `json:"id"`
	SaleID    uuid.UUID       `json:"sale_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal retorna cantidad × precio unitario del renglón
func (i *SaleLineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewSaleLineItem crea un renglón de venta validado
func NewSaleLineItem(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*SaleLineItem, error) {
	if quantity < 1 {
		return nil, &InvalidQuantityError{Quantity: quantity}
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidDiscount
	}

	return &SaleLineItem{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

// NewSale crea una venta con sus renglones. El total es la suma de los
// subtotales menos el descuento: esa igualdad es el invariante del modelo.
func NewSale(
	items []SaleLineItem,
	customerType CustomerType,
	discount decimal.Decimal,
	promotionID *uuid.UUID,
) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if !customerType.IsValid() {
		return nil, ErrInvalidCustomerType
	}

	subtotal := decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].Subtotal())
	}

	if discount.LessThan(decimal.Zero) || discount.GreaterThan(subtotal) {
		return nil, ErrInvalidDiscount
	}

	saleID := uuid.New()
	for i := range items {
		items[i].SaleID = saleID
	}

	return &Sale{
		ID:           saleID,
		Date:         time.Now(),
		Total:        subtotal.Sub(discount),
		CustomerType: customerType,
		AppliedPromo: promotionID != nil,
		PromotionID:  promotionID,
		Items:        items,
	}, nil
}
