package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromotion(name string, percentage int64, requirements ...PromotionRequirement) PromotionWithRequirements {
	promotionID := uuid.New()
	for i := range requirements {
		requirements[i].PromotionID = promotionID
	}
	return PromotionWithRequirements{
		Promotion: Promotion{
			ID:                 promotionID,
			Name:               name,
			DiscountPercentage: decimal.NewFromInt(percentage),
			Active:             true,
		},
		Requirements: requirements,
	}
}

func requirement(productID uuid.UUID, quantity int) PromotionRequirement {
	return PromotionRequirement{ProductID: productID, RequiredQuantity: quantity}
}

func line(productID uuid.UUID, quantity int, unitPrice string) CartLine {
	return CartLine{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
}

func TestEvaluateBestPromotion_ExactBundleDiscount(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name       string
		percentage int64
		quantity   int
		unitPrice  string
		expected   string
	}{
		{"10% sobre 2 unidades a 150", 10, 2, "150", "30"},
		{"25% sobre 4 unidades a 99.99", 25, 4, "99.99", "99.99"},
		{"100% regala el bundle completo", 100, 1, "80", "80"},
		{"50% sobre 3 unidades a 33.33", 50, 3, "33.33", "49.995"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promos := []PromotionWithRequirements{
				newPromotion("promo", tt.percentage, requirement(productID, tt.quantity)),
			}
			cart := []CartLine{line(productID, tt.quantity, tt.unitPrice)}

			winner := EvaluateBestPromotion(cart, promos)

			require.NotNil(t, winner)
			assert.True(t, winner.Discount.Equal(decimal.RequireFromString(tt.expected)),
				"expected discount %s, got %s", tt.expected, winner.Discount)
		})
	}
}

func TestEvaluateBestPromotion_SurplusQuantityDoesNotIncreaseDiscount(t *testing.T) {
	productID := uuid.New()
	promos := []PromotionWithRequirements{
		newPromotion("lleva 2", 10, requirement(productID, 2)),
	}

	// Con la cantidad justa
	exact := EvaluateBestPromotion([]CartLine{line(productID, 2, "100")}, promos)
	require.NotNil(t, exact)

	// Con excedente: el descuento queda capeado en la cantidad requerida
	surplus := EvaluateBestPromotion([]CartLine{line(productID, 7, "100")}, promos)
	require.NotNil(t, surplus)

	assert.True(t, exact.Discount.Equal(surplus.Discount),
		"surplus changed the discount: %s vs %s", exact.Discount, surplus.Discount)
	assert.True(t, surplus.Discount.Equal(decimal.NewFromInt(20)))
}

func TestEvaluateBestPromotion_UnderQuantityNotEligible(t *testing.T) {
	productID := uuid.New()
	promos := []PromotionWithRequirements{
		newPromotion("lleva 3", 10, requirement(productID, 3)),
	}

	winner := EvaluateBestPromotion([]CartLine{line(productID, 2, "100")}, promos)
	assert.Nil(t, winner)
}

func TestEvaluateBestPromotion_MissingRequiredProductNotEligible(t *testing.T) {
	inCart := uuid.New()
	missing := uuid.New()
	promos := []PromotionWithRequirements{
		newPromotion("combo", 15, requirement(inCart, 1), requirement(missing, 1)),
	}

	winner := EvaluateBestPromotion([]CartLine{line(inCart, 5, "100")}, promos)
	assert.Nil(t, winner)
}

func TestEvaluateBestPromotion_EmptyRequirementsNeverEligible(t *testing.T) {
	productID := uuid.New()
	promos := []PromotionWithRequirements{
		newPromotion("mal configurada", 50),
	}

	winner := EvaluateBestPromotion([]CartLine{line(productID, 10, "100")}, promos)
	assert.Nil(t, winner)
}

func TestEvaluateBestPromotion_EmptyCartNoPromotion(t *testing.T) {
	productID := uuid.New()
	promos := []PromotionWithRequirements{
		newPromotion("promo", 10, requirement(productID, 1)),
	}

	assert.Nil(t, EvaluateBestPromotion(nil, promos))
	assert.Nil(t, EvaluateBestPromotion([]CartLine{}, promos))
}

func TestEvaluateBestPromotion_ZeroDiscountReportedAsNone(t *testing.T) {
	productID := uuid.New()

	// 0% de descuento: elegible pero no mejora nada
	zeroPct := []PromotionWithRequirements{
		newPromotion("cero", 0, requirement(productID, 1)),
	}
	assert.Nil(t, EvaluateBestPromotion([]CartLine{line(productID, 1, "100")}, zeroPct))

	// Producto a precio cero: descuento exactamente cero
	freebie := []PromotionWithRequirements{
		newPromotion("gratis", 50, requirement(productID, 1)),
	}
	assert.Nil(t, EvaluateBestPromotion([]CartLine{line(productID, 1, "0")}, freebie))
}

func TestEvaluateBestPromotion_PicksLargestDiscountRegardlessOfOrder(t *testing.T) {
	productID := uuid.New()

	small := newPromotion("chica", 10, requirement(productID, 5)) // 50.00
	big := newPromotion("grande", 15, requirement(productID, 5)) // 75.00
	cart := []CartLine{line(productID, 5, "100")}

	for name, promos := range map[string][]PromotionWithRequirements{
		"chica primero":  {small, big},
		"grande primero": {big, small},
	} {
		winner := EvaluateBestPromotion(cart, promos)
		require.NotNil(t, winner, name)
		assert.Equal(t, big.Promotion.ID, winner.Promotion.ID, name)
		assert.True(t, winner.Discount.Equal(decimal.NewFromInt(75)), name)
	}
}

func TestEvaluateBestPromotion_TieGoesToFirstInInputOrder(t *testing.T) {
	productID := uuid.New()

	first := newPromotion("primera", 20, requirement(productID, 2))
	second := newPromotion("segunda", 20, requirement(productID, 2))
	cart := []CartLine{line(productID, 2, "100")}

	winner := EvaluateBestPromotion(cart, []PromotionWithRequirements{first, second})
	require.NotNil(t, winner)
	assert.Equal(t, first.Promotion.ID, winner.Promotion.ID)

	// Invirtiendo el orden gana la otra: el empate lo decide el orden de entrada
	winner = EvaluateBestPromotion(cart, []PromotionWithRequirements{second, first})
	require.NotNil(t, winner)
	assert.Equal(t, second.Promotion.ID, winner.Promotion.ID)
}

func TestEvaluateBestPromotion_Idempotent(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()

	promos := []PromotionWithRequirements{
		newPromotion("combo", 10, requirement(productA, 2), requirement(productB, 1)),
		newPromotion("solo A", 25, requirement(productA, 3)),
	}
	cart := []CartLine{
		line(productA, 3, "120.50"),
		line(productB, 2, "45"),
	}

	run1 := EvaluateBestPromotion(cart, promos)
	run2 := EvaluateBestPromotion(cart, promos)

	require.NotNil(t, run1)
	require.NotNil(t, run2)
	assert.Equal(t, run1.Promotion.ID, run2.Promotion.ID)
	assert.True(t, run1.Discount.Equal(run2.Discount))
	assert.Equal(t, run1.UsedProducts, run2.UsedProducts)
}

func TestEvaluateBestPromotion_OnlyBundledProductsCountTowardsDiscount(t *testing.T) {
	bundled := uuid.New()
	other := uuid.New()

	promos := []PromotionWithRequirements{
		newPromotion("solo el bundle", 10, requirement(bundled, 2)),
	}
	cart := []CartLine{
		line(bundled, 2, "100"),
		line(other, 9, "500"), // No participa del descuento
	}

	winner := EvaluateBestPromotion(cart, promos)
	require.NotNil(t, winner)
	assert.True(t, winner.Discount.Equal(decimal.NewFromInt(20)),
		"discount should ignore products outside the bundle, got %s", winner.Discount)
}

func TestEvaluateBestPromotion_UsedProductsReportsRequirementMap(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()

	promos := []PromotionWithRequirements{
		newPromotion("combo", 10, requirement(productA, 2), requirement(productB, 3)),
	}
	cart := []CartLine{
		line(productA, 4, "10"),
		line(productB, 3, "20"),
	}

	winner := EvaluateBestPromotion(cart, promos)
	require.NotNil(t, winner)
	assert.Equal(t, map[uuid.UUID]int{productA: 2, productB: 3}, winner.UsedProducts)
}
