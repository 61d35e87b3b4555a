package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalogEntity "github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	promotionCache "github.com/EnzoManrique/TrailerApp/src/promotion/infrastructure/cache"
	"github.com/EnzoManrique/TrailerApp/src/sales/application/usecase"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setQuantityRouter(t *testing.T) (*gin.Engine, *entity.Cart, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	product := catalogEntity.Product{
		ID:             uuid.New(),
		Name:           "Aceite 10W40",
		ListPrice:      decimal.NewFromInt(100),
		WholesalePrice: decimal.NewFromInt(80),
		Stock:          10,
	}

	cart, err := entity.NewCart(entity.CustomerTypeRetail)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(product, 2))

	sessions := cache.NewCartSessionCache()
	sessions.Put(cart)

	ctrl := NewSaleController(
		nil,
		nil,
		usecase.NewUpdateCartItemUseCase(sessions),
		nil,
		nil,
		usecase.NewGetCartSummaryUseCase(sessions, promotionCache.NewPromotionCache(nil)),
		nil,
		nil,
		nil,
	)

	router := gin.New()
	ctrl.RegisterRoutes(router.Group("/api/v1"))
	return router, cart, product.ID
}

// La cantidad cero pasa el binding del request y la rechaza el carrito,
// el 400 lleva el mensaje del dominio con la cantidad ofensora.
func TestSetQuantity_ZeroQuantityReturnsDomainError(t *testing.T) {
	router, cart, productID := setQuantityRouter(t)

	url := fmt.Sprintf("/api/v1/carts/%s/items/%s", cart.SessionID, productID)
	req := httptest.NewRequest(http.MethodPut, url, strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quantity must be greater than 0, got 0")

	// El carrito no cambió
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestSetQuantity_ValidQuantityUpdatesCart(t *testing.T) {
	router, cart, productID := setQuantityRouter(t)

	url := fmt.Sprintf("/api/v1/carts/%s/items/%s", cart.SessionID, productID)
	req := httptest.NewRequest(http.MethodPut, url, strings.NewReader(`{"quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}
