package request

import "github.com/google/uuid"

// CreateCartRequest request para abrir una sesión de checkout
type CreateCartRequest struct {
	CustomerType string `json:"customer_type,omitempty"` // Default: "Lista"
}

// AddCartItemRequest request para agregar un producto al carrito.
// La cantidad no lleva binding: cero y negativos los rechaza el carrito
// con InvalidQuantityError, que nombra la cantidad ofensora.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}

// SetQuantityRequest request para fijar la cantidad de un item del carrito
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetCustomerTypeRequest request para cambiar el tipo de cliente de la sesión
type SetCustomerTypeRequest struct {
	CustomerType string `json:"customer_type" binding:"required"`
}
