package cache

import (
	"sync"

	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"

	"github.com/google/uuid"
)

// cartSession entrada del registro: el carrito más su mutex propio.
// El mutex serializa todas las operaciones sobre el mismo carrito,
// dos requests concurrentes sobre la misma sesión no se pisan.
type cartSession struct {
	mu   sync.Mutex
	cart *entity.Cart
}

// CartSessionCache registro en memoria de las sesiones de checkout en curso.
// El RWMutex protege el mapa; el mutex de cada entrada protege su carrito.
// Todo acceso al carrito pasa por WithCart, el puntero nunca sale del lock.
type CartSessionCache struct {
	sessions map[uuid.UUID]*cartSession
	mu       sync.RWMutex
}

// NewCartSessionCache crea un nuevo registro de sesiones
func NewCartSessionCache() *CartSessionCache {
	return &CartSessionCache{
		sessions: make(map[uuid.UUID]*cartSession),
	}
}

// Put registra el carrito de una nueva sesión
func (c *CartSessionCache) Put(cart *entity.Cart) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[cart.SessionID] = &cartSession{cart: cart}
}

// WithCart ejecuta fn con el carrito de la sesión bajo su mutex, o retorna
// ErrCartSessionNotFound. fn puede leer y mutar el carrito con exclusividad;
// borrar la sesión desde adentro de fn es válido.
func (c *CartSessionCache) WithCart(sessionID uuid.UUID, fn func(cart *entity.Cart) error) error {
	c.mu.RLock()
	session, ok := c.sessions[sessionID]
	c.mu.RUnlock()
	if !ok {
		return entity.ErrCartSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return fn(session.cart)
}

// Delete descarta la sesión (checkout confirmado o abandonado)
func (c *CartSessionCache) Delete(sessionID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, sessionID)
}

// Len retorna la cantidad de sesiones en curso
func (c *CartSessionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}
