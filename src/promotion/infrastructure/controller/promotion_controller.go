package controller

import (
	"log"
	"net/http"

	"github.com/EnzoManrique/TrailerApp/src/promotion/infrastructure/cache"

	"github.com/gin-gonic/gin"
)

// PromotionController maneja las peticiones HTTP sobre promociones
type PromotionController struct {
	promotionCache *cache.PromotionCache
}

// NewPromotionController crea una nueva instancia del controlador
func NewPromotionController(promotionCache *cache.PromotionCache) *PromotionController {
	return &PromotionController{promotionCache: promotionCache}
}

// RegisterRoutes registra las rutas del controlador
func (c *PromotionController) RegisterRoutes(router *gin.RouterGroup) {
	promotions := router.Group("/promotions")
	{
		promotions.GET("/active", c.ListActive)
		promotions.POST("/reload", c.Reload)
	}

	log.Println("Rutas Promotion disponibles:")
	log.Println("  GET    /api/v1/promotions/active")
	log.Println("  POST   /api/v1/promotions/reload")
}

// ListActive retorna las promociones activas cacheadas con sus requisitos
func (c *PromotionController) ListActive(ctx *gin.Context) {
	promotions := c.promotionCache.Active()

	ctx.JSON(http.StatusOK, gin.H{
		"items":       promotions,
		"total_count": len(promotions),
	})
}

// Reload recarga el cache de promociones desde la base.
// La app de administración lo invoca después de editar promociones.
func (c *PromotionController) Reload(ctx *gin.Context) {
	if err := c.promotionCache.Reload(ctx.Request.Context()); err != nil {
		log.Printf("Error reloading promotion cache: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"reloaded":    true,
		"total_count": len(c.promotionCache.Active()),
	})
}
