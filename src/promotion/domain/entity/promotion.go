package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Promotion representa una promoción por bundle: un porcentaje de descuento
// que aplica cuando el carrito contiene los productos requeridos
type Promotion struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"` // 0 a 100
	Active             bool            `json:"active"`
}

// PromotionRequirement representa un requisito (producto, cantidad) de una promoción
type PromotionRequirement struct {
	PromotionID      uuid.UUID `json:"promotion_id"`
	ProductID        uuid.UUID `json:"product_id"`
	RequiredQuantity int       `json:"required_quantity"`
}

// PromotionWithRequirements agrupa una promoción con sus requisitos ya cargados
type PromotionWithRequirements struct {
	Promotion    Promotion              `json:"promotion"`
	Requirements []PromotionRequirement `json:"requirements"`
}
