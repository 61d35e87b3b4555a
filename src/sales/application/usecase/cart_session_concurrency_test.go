package usecase

import (
	"context"
	"sync"
	"testing"

	promotionCache "github.com/EnzoManrique/TrailerApp/src/promotion/infrastructure/cache"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"

	"github.com/stretchr/testify/require"
)

// Una caja agrega items mientras el display del cliente pide el resumen de la
// misma sesión. El mutex de la sesión serializa ambos lados: cada resumen ve
// un carrito consistente y ninguna mutación se pierde. Correr con -race.
func TestCartSession_ConcurrentAddAndSummary(t *testing.T) {
	p := product("Amortiguador", "250", 1000000)
	products := newFakeProductRepository(p)

	sessions := cache.NewCartSessionCache()
	promoCache := promotionCache.NewPromotionCache(newFakePromotionRepository())
	require.NoError(t, promoCache.Reload(context.Background()))

	addItemUC := NewAddCartItemUseCase(sessions, products)
	summaryUC := NewGetCartSummaryUseCase(sessions, promoCache)

	cart, err := entity.NewCart(entity.CustomerTypeRetail)
	require.NoError(t, err)
	sessions.Put(cart)

	const iterations = 100
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			if err := addItemUC.Execute(context.Background(), cart.SessionID, p.ID, 1); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			summary, err := summaryUC.Execute(cart.SessionID)
			if err != nil {
				t.Error(err)
				return
			}
			// Cada resumen es internamente consistente
			if !summary.Total.Equal(summary.Subtotal.Sub(summary.Discount)) {
				t.Errorf("resumen inconsistente: total %s, subtotal %s, descuento %s",
					summary.Total, summary.Subtotal, summary.Discount)
				return
			}
		}
	}()

	wg.Wait()

	// Ninguna de las 100 altas se perdió
	summary, err := summaryUC.Execute(cart.SessionID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	require.Equal(t, iterations, summary.Items[0].Quantity)
}
