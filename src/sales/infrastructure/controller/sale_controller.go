package controller

import (
	"errors"
	"log"
	"net/http"

	catalogEntity "github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/application/request"
	"github.com/EnzoManrique/TrailerApp/src/sales/application/usecase"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleController maneja las peticiones HTTP de carritos y checkout
type SaleController struct {
	createCartUC      *usecase.CreateCartUseCase
	addCartItemUC     *usecase.AddCartItemUseCase
	updateCartItemUC  *usecase.UpdateCartItemUseCase
	removeCartItemUC  *usecase.RemoveCartItemUseCase
	setCustomerTypeUC *usecase.SetCustomerTypeUseCase
	getCartSummaryUC  *usecase.GetCartSummaryUseCase
	abandonCartUC     *usecase.AbandonCartUseCase
	commitSaleUC      *usecase.CommitSaleUseCase
	listSalesUC       *usecase.ListSalesUseCase
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createCartUC *usecase.CreateCartUseCase,
	addCartItemUC *usecase.AddCartItemUseCase,
	updateCartItemUC *usecase.UpdateCartItemUseCase,
	removeCartItemUC *usecase.RemoveCartItemUseCase,
	setCustomerTypeUC *usecase.SetCustomerTypeUseCase,
	getCartSummaryUC *usecase.GetCartSummaryUseCase,
	abandonCartUC *usecase.AbandonCartUseCase,
	commitSaleUC *usecase.CommitSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
) *SaleController {
	return &SaleController{
		createCartUC:      createCartUC,
		addCartItemUC:     addCartItemUC,
		updateCartItemUC:  updateCartItemUC,
		removeCartItemUC:  removeCartItemUC,
		setCustomerTypeUC: setCustomerTypeUC,
		getCartSummaryUC:  getCartSummaryUC,
		abandonCartUC:     abandonCartUC,
		commitSaleUC:      commitSaleUC,
		listSalesUC:       listSalesUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	carts := router.Group("/carts")
	{
		carts.POST("", c.CreateCart)
		carts.GET("/:session_id", c.GetCartSummary)
		carts.DELETE("/:session_id", c.AbandonCart)
		carts.POST("/:session_id/items", c.AddItem)
		carts.PUT("/:session_id/items/:product_id", c.SetQuantity)
		carts.DELETE("/:session_id/items/:product_id", c.RemoveItem)
		carts.PUT("/:session_id/customer-type", c.SetCustomerType)
		carts.POST("/:session_id/checkout", c.Checkout)
	}

	router.GET("/sales", c.ListSales)

	log.Println("Rutas Sale disponibles:")
	log.Println("  POST   /api/v1/carts")
	log.Println("  GET    /api/v1/carts/:session_id")
	log.Println("  DELETE /api/v1/carts/:session_id")
	log.Println("  POST   /api/v1/carts/:session_id/items")
	log.Println("  PUT    /api/v1/carts/:session_id/items/:product_id")
	log.Println("  DELETE /api/v1/carts/:session_id/items/:product_id")
	log.Println("  PUT    /api/v1/carts/:session_id/customer-type")
	log.Println("  POST   /api/v1/carts/:session_id/checkout  ⭐ (POS Checkout)")
	log.Println("  GET    /api/v1/sales")
}

// CreateCart abre una nueva sesión de checkout
func (c *SaleController) CreateCart(ctx *gin.Context) {
	var req request.CreateCartRequest
	// Body vacío = carrito minorista por defecto
	_ = ctx.ShouldBindJSON(&req)

	cart, err := c.createCartUC.Execute(req.CustomerType)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"session_id":    cart.SessionID,
		"customer_type": cart.CustomerType,
		"created_at":    cart.CreatedAt,
	})
}

// GetCartSummary retorna el carrito con los totales en vivo
func (c *SaleController) GetCartSummary(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	summary, err := c.getCartSummaryUC.Execute(sessionID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// AbandonCart descarta la sesión sin vender
func (c *SaleController) AbandonCart(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	c.abandonCartUC.Execute(sessionID)
	ctx.Status(http.StatusNoContent)
}

// AddItem agrega un producto al carrito de la sesión
func (c *SaleController) AddItem(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	var req request.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.addCartItemUC.Execute(ctx.Request.Context(), sessionID, req.ProductID, req.Quantity); err != nil {
		c.respondError(ctx, err)
		return
	}

	c.GetCartSummary(ctx)
}

// SetQuantity fija la cantidad de un item del carrito
func (c *SaleController) SetQuantity(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	var req request.SetQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.updateCartItemUC.Execute(sessionID, productID, req.Quantity); err != nil {
		c.respondError(ctx, err)
		return
	}

	c.GetCartSummary(ctx)
}

// RemoveItem saca un producto del carrito
func (c *SaleController) RemoveItem(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	if err := c.removeCartItemUC.Execute(sessionID, productID); err != nil {
		c.respondError(ctx, err)
		return
	}

	c.GetCartSummary(ctx)
}

// SetCustomerType cambia el tipo de cliente y re-precia el carrito
func (c *SaleController) SetCustomerType(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	var req request.SetCustomerTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.setCustomerTypeUC.Execute(sessionID, req.CustomerType); err != nil {
		c.respondError(ctx, err)
		return
	}

	c.GetCartSummary(ctx)
}

// Checkout confirma la venta de la sesión y devuelve el comprobante
func (c *SaleController) Checkout(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	receipt, err := c.commitSaleUC.Execute(ctx.Request.Context(), sessionID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, receipt)
}

// ListSales retorna el historial de ventas
func (c *SaleController) ListSales(ctx *gin.Context) {
	items, err := c.listSalesUC.Execute(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

func (c *SaleController) parseSessionID(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session_id format"})
		return uuid.Nil, false
	}
	return sessionID, true
}

// respondError mapea la taxonomía de errores del motor a códigos HTTP
func (c *SaleController) respondError(ctx *gin.Context, err error) {
	var invalidQty *entity.InvalidQuantityError
	var insufficientStock *catalogEntity.InsufficientStockError
	var persistence *entity.PersistenceError

	switch {
	case errors.Is(err, entity.ErrCartSessionNotFound),
		errors.Is(err, entity.ErrItemNotInCart),
		errors.Is(err, catalogEntity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, entity.ErrEmptyCart),
		errors.Is(err, entity.ErrInvalidCustomerType):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.As(err, &invalidQty):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": invalidQty.Error()})

	case errors.As(err, &insufficientStock):
		// Retryable: el caller corrige la cantidad y reintenta
		ctx.JSON(http.StatusConflict, gin.H{
			"error":        insufficientStock.Error(),
			"product_id":   insufficientStock.ProductID,
			"product_name": insufficientStock.ProductName,
			"requested":    insufficientStock.Requested,
			"available":    insufficientStock.Available,
		})

	case errors.As(err, &persistence):
		log.Printf("Persistence error: %v", persistence)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": persistence.Error()})

	default:
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
