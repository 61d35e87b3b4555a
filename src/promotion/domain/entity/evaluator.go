package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Evaluación de promociones: función pura sobre un snapshot del carrito y las
// promociones activas. No toca ningún store y es idempotente.

// CartLine es la vista mínima de un item del carrito que necesita el evaluador
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// ApplicablePromotion representa la promoción ganadora con su descuento calculado
type ApplicablePromotion struct {
	Promotion Promotion
	Discount  decimal.Decimal
	// UsedProducts mapea producto -> cantidad requerida que participó del descuento
	UsedProducts map[uuid.UUID]int
}

var oneHundred = decimal.NewFromInt(100)

// EvaluateBestPromotion evalúa todas las promociones activas y retorna la de mayor
// descuento absoluto, o nil si ninguna califica o todos los descuentos dan cero.
// Los empates los gana la primera promoción en el orden de entrada: la comparación
// exige mejora estricta sobre la mejor vista hasta el momento.
func EvaluateBestPromotion(lines []CartLine, promotions []PromotionWithRequirements) *ApplicablePromotion {
	// Mapa de cantidades en el carrito para búsqueda rápida
	cartQuantities := make(map[uuid.UUID]int, len(lines))
	cartPrices := make(map[uuid.UUID]decimal.Decimal, len(lines))
	for _, line := range lines {
		cartQuantities[line.ProductID] = line.Quantity
		cartPrices[line.ProductID] = line.UnitPrice
	}

	var best *ApplicablePromotion
	bestDiscount := decimal.Zero

	for _, promo := range promotions {
		if !meetsRequirements(cartQuantities, promo.Requirements) {
			continue
		}

		discount := computeDiscount(cartQuantities, cartPrices, promo)

		if discount.GreaterThan(bestDiscount) {
			bestDiscount = discount
			best = &ApplicablePromotion{
				Promotion:    promo.Promotion,
				Discount:     discount,
				UsedProducts: usedProducts(promo.Requirements),
			}
		}
	}

	return best
}

// meetsRequirements verifica que el carrito cubra cada requisito de la promoción.
// Una promoción sin requisitos nunca es elegible (ver nota en la promoción vacía:
// una promoción guardada sin productos asociados simplemente no matchea).
func meetsRequirements(cartQuantities map[uuid.UUID]int, requirements []PromotionRequirement) bool {
	if len(requirements) == 0 {
		return false
	}

	for _, req := range requirements {
		quantity, inCart := cartQuantities[req.ProductID]
		if !inCart || quantity < req.RequiredQuantity {
			return false
		}
	}

	return true
}

// computeDiscount calcula el descuento en plata de aplicar la promoción.
// Solo la cantidad requerida de cada producto participa del descuento: el
// excedente del mismo producto en el carrito se cobra a precio normal.
func computeDiscount(
	cartQuantities map[uuid.UUID]int,
	cartPrices map[uuid.UUID]decimal.Decimal,
	promo PromotionWithRequirements,
) decimal.Decimal {
	discountableSubtotal := decimal.Zero

	for _, req := range promo.Requirements {
		quantity, inCart := cartQuantities[req.ProductID]
		if !inCart {
			continue
		}

		discountedQuantity := quantity
		if req.RequiredQuantity < discountedQuantity {
			discountedQuantity = req.RequiredQuantity
		}

		lineAmount := cartPrices[req.ProductID].Mul(decimal.NewFromInt(int64(discountedQuantity)))
		discountableSubtotal = discountableSubtotal.Add(lineAmount)
	}

	return discountableSubtotal.Mul(promo.Promotion.DiscountPercentage).Div(oneHundred)
}

// usedProducts arma el mapa producto -> cantidad requerida de la promoción aplicada
func usedProducts(requirements []PromotionRequirement) map[uuid.UUID]int {
	used := make(map[uuid.UUID]int, len(requirements))
	for _, req := range requirements {
		used[req.ProductID] = req.RequiredQuantity
	}
	return used
}
