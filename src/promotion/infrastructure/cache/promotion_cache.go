package cache

import (
	"context"
	"log"
	"sync"

	"github.com/EnzoManrique/TrailerApp/src/promotion/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/promotion/domain/port"
)

// PromotionCache cache en memoria de promociones activas con sus requisitos.
// Sirve la evaluación en vivo del carrito sin ir a la base en cada mutación.
// El commit de una venta NO usa este cache: re-lee el repositorio para evaluar
// contra el set de promociones vigente.
type PromotionCache struct {
	promotions []entity.PromotionWithRequirements
	repo       port.PromotionRepository
	mu         sync.RWMutex
}

// NewPromotionCache crea un nuevo cache de promociones
func NewPromotionCache(repo port.PromotionRepository) *PromotionCache {
	return &PromotionCache{repo: repo}
}

// Reload recarga las promociones activas y sus requisitos desde el repositorio
func (c *PromotionCache) Reload(ctx context.Context) error {
	log.Println("🔄 Loading active promotions into cache...")

	active, err := c.repo.ListActive(ctx)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load active promotions: %v", err)
		return err
	}

	loaded := make([]entity.PromotionWithRequirements, 0, len(active))
	for _, promotion := range active {
		requirements, err := c.repo.GetRequirements(ctx, promotion.ID)
		if err != nil {
			log.Printf("⚠️  Warning: Could not load requirements for promotion %s: %v", promotion.ID, err)
			return err
		}
		loaded = append(loaded, entity.PromotionWithRequirements{
			Promotion:    *promotion,
			Requirements: requirements,
		})
	}

	c.mu.Lock()
	c.promotions = loaded
	c.mu.Unlock()

	log.Printf("✅ Promotion cache loaded: %d active promotions", len(loaded))
	return nil
}

// Active retorna un snapshot de las promociones activas cacheadas,
// en el mismo orden estable que entrega el repositorio
func (c *PromotionCache) Active() []entity.PromotionWithRequirements {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]entity.PromotionWithRequirements, len(c.promotions))
	copy(snapshot, c.promotions)
	return snapshot
}
