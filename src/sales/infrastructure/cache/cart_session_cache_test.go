package cache

import (
	"sync"
	"testing"

	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSessionCache_PutWithCartDelete(t *testing.T) {
	cache := NewCartSessionCache()

	cart, err := entity.NewCart(entity.CustomerTypeRetail)
	require.NoError(t, err)

	cache.Put(cart)
	assert.Equal(t, 1, cache.Len())

	err = cache.WithCart(cart.SessionID, func(got *entity.Cart) error {
		assert.Same(t, cart, got)
		return nil
	})
	require.NoError(t, err)

	cache.Delete(cart.SessionID)
	assert.Equal(t, 0, cache.Len())

	err = cache.WithCart(cart.SessionID, func(*entity.Cart) error { return nil })
	assert.ErrorIs(t, err, entity.ErrCartSessionNotFound)
}

func TestCartSessionCache_WithCartUnknownSession(t *testing.T) {
	cache := NewCartSessionCache()

	called := false
	err := cache.WithCart(uuid.New(), func(*entity.Cart) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, entity.ErrCartSessionNotFound)
	assert.False(t, called)
}

func TestCartSessionCache_WithCartPropagatesError(t *testing.T) {
	cache := NewCartSessionCache()

	cart, err := entity.NewCart(entity.CustomerTypeRetail)
	require.NoError(t, err)
	cache.Put(cart)

	err = cache.WithCart(cart.SessionID, func(*entity.Cart) error {
		return entity.ErrItemNotInCart
	})
	assert.ErrorIs(t, err, entity.ErrItemNotInCart)
}

func TestCartSessionCache_DeleteInsideWithCart(t *testing.T) {
	cache := NewCartSessionCache()

	cart, err := entity.NewCart(entity.CustomerTypeWholesale)
	require.NoError(t, err)
	cache.Put(cart)

	err = cache.WithCart(cart.SessionID, func(*entity.Cart) error {
		cache.Delete(cart.SessionID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestCartSessionCache_DeleteIsIdempotent(t *testing.T) {
	cache := NewCartSessionCache()

	cart, err := entity.NewCart(entity.CustomerTypeWholesale)
	require.NoError(t, err)
	cache.Put(cart)

	cache.Delete(cart.SessionID)
	cache.Delete(cart.SessionID)
	assert.Equal(t, 0, cache.Len())
}

// Cada caja opera su propia sesión, pero las altas/bajas/lecturas de distintas
// cajas llegan en paralelo. Correr con -race.
func TestCartSessionCache_ConcurrentSessions(t *testing.T) {
	cache := NewCartSessionCache()

	const sessions = 50
	var wg sync.WaitGroup

	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			cart, err := entity.NewCart(entity.CustomerTypeRetail)
			if err != nil {
				t.Error(err)
				return
			}
			cache.Put(cart)

			err = cache.WithCart(cart.SessionID, func(got *entity.Cart) error {
				if got.SessionID != cart.SessionID {
					t.Errorf("got session %s, want %s", got.SessionID, cart.SessionID)
				}
				return nil
			})
			if err != nil {
				t.Error(err)
				return
			}

			cache.Delete(cart.SessionID)
		}()
	}

	wg.Wait()
	assert.Equal(t, 0, cache.Len())
}

// Dos requests concurrentes sobre la MISMA sesión: el mutex de la entrada
// serializa las mutaciones, cada lectura ve un carrito consistente.
// Correr con -race.
func TestCartSessionCache_ConcurrentSameSession(t *testing.T) {
	cache := NewCartSessionCache()

	cart, err := entity.NewCart(entity.CustomerTypeRetail)
	require.NoError(t, err)
	cache.Put(cart)

	const iterations = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			err := cache.WithCart(cart.SessionID, func(c *entity.Cart) error {
				c.CustomerType = entity.CustomerTypeWholesale
				c.CustomerType = entity.CustomerTypeRetail
				return nil
			})
			if err != nil {
				t.Error(err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			err := cache.WithCart(cart.SessionID, func(c *entity.Cart) error {
				if !c.CustomerType.IsValid() {
					t.Errorf("carrito inconsistente: customer type %q", c.CustomerType)
				}
				return nil
			})
			if err != nil {
				t.Error(err)
				return
			}
		}
	}()

	wg.Wait()
}
