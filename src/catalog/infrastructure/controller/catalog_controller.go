package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/EnzoManrique/TrailerApp/src/catalog/application/usecase"
	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogController maneja las peticiones HTTP de lectura del catálogo
type CatalogController struct {
	getProductUC     *usecase.GetProductUseCase
	searchProductsUC *usecase.SearchProductsUseCase
	listCategoriesUC *usecase.ListCategoriesUseCase
	listLowStockUC   *usecase.ListLowStockUseCase
}

// NewCatalogController crea una nueva instancia del controlador
func NewCatalogController(
	getProductUC *usecase.GetProductUseCase,
	searchProductsUC *usecase.SearchProductsUseCase,
	listCategoriesUC *usecase.ListCategoriesUseCase,
	listLowStockUC *usecase.ListLowStockUseCase,
) *CatalogController {
	return &CatalogController{
		getProductUC:     getProductUC,
		searchProductsUC: searchProductsUC,
		listCategoriesUC: listCategoriesUC,
		listLowStockUC:   listLowStockUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.SearchProducts)
		products.GET("/low-stock", c.ListLowStock)
		products.GET("/:product_id", c.GetProduct)
	}

	router.GET("/categories", c.ListCategories)

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/low-stock")
	log.Println("  GET    /api/v1/products/:product_id")
	log.Println("  GET    /api/v1/categories")
}

// SearchProducts lista productos con filtros opcionales (nombre, categoría) y paginación
func (c *CatalogController) SearchProducts(ctx *gin.Context) {
	filters := usecase.SearchProductsFilters{
		Name: ctx.Query("name"),
	}

	if rawCategory := ctx.Query("category_id"); rawCategory != "" {
		categoryID, err := uuid.Parse(rawCategory)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id format"})
			return
		}
		filters.CategoryID = &categoryID
	}

	filters.Limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	filters.Offset, _ = strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	products, total, err := c.searchProductsUC.Execute(ctx.Request.Context(), filters)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       products,
		"total_count": total,
	})
}

// GetProduct retorna un producto por id
func (c *CatalogController) GetProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	product, err := c.getProductUC.Execute(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		log.Printf("Error getting product %s: %v", productID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// ListCategories retorna todas las categorías
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.listCategoriesUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": categories})
}

// ListLowStock retorna los productos en o por debajo de su stock mínimo
func (c *CatalogController) ListLowStock(ctx *gin.Context) {
	products, err := c.listLowStockUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing low stock products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       products,
		"total_count": len(products),
	})
}
