package entity

import (
	"time"

	catalogEntity "github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	promotionEntity "github.com/EnzoManrique/TrailerApp/src/promotion/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerType tipo de cliente de la sesión; decide qué precio unitario se aplica
type CustomerType string

const (
	// CustomerTypeRetail cliente minorista, paga precio de lista
	CustomerTypeRetail CustomerType = "Lista"
	// CustomerTypeWholesale cliente mayorista
	CustomerTypeWholesale CustomerType = "Mayorista"
)

// IsValid indica si el tipo de cliente es uno de los soportados
func (t CustomerType) IsValid() bool {
	return t == CustomerTypeRetail || t == CustomerTypeWholesale
}

// CartItem es un renglón transitorio del carrito: referencia al producto con un
// snapshot de sus atributos al momento de agregarlo, cantidad y precio efectivo
type CartItem struct {
	Product   catalogEntity.Product `json:"product"`
	Quantity  int                   `json:"quantity"`
	UnitPrice decimal.Decimal       `json:"unit_price"`
}

// Subtotal retorna cantidad × precio unitario del renglón
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart es el conjunto de trabajo de una sesión de checkout. Vive en memoria,
// pertenece a una única venta en curso y nunca escribe sobre el catálogo.
type Cart struct {
	SessionID    uuid.UUID    `json:"session_id"`
	CustomerType CustomerType `json:"customer_type"`
	Items        []CartItem   `json:"items"`
	CreatedAt    time.Time    `json:"created_at"`
}

// NewCart crea un carrito vacío para una nueva sesión de checkout
func NewCart(customerType CustomerType) (*Cart, error) {
	if customerType == "" {
		customerType = CustomerTypeRetail
	}
	if !customerType.IsValid() {
		return nil, ErrInvalidCustomerType
	}

	return &Cart{
		SessionID:    uuid.New(),
		CustomerType: customerType,
		CreatedAt:    time.Now(),
	}, nil
}

// AddItem agrega un producto al carrito, o incrementa su cantidad si ya está.
// El precio se elige según el tipo de cliente de la sesión. La cantidad
// resultante no puede superar el stock del producto recibido.
func (c *Cart) AddItem(product catalogEntity.Product, quantity int) error {
	if quantity < 1 {
		return &InvalidQuantityError{Quantity: quantity}
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			newQuantity := c.Items[i].Quantity + quantity
			if newQuantity > product.Stock {
				return &catalogEntity.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   newQuantity,
					Available:   product.Stock,
				}
			}
			// Refrescar el snapshot: el caller trae el producto recién leído
			c.Items[i].Product = product
			c.Items[i].Quantity = newQuantity
			c.Items[i].UnitPrice = unitPriceFor(product, c.CustomerType)
			return nil
		}
	}

	if quantity > product.Stock {
		return &catalogEntity.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}

	c.Items = append(c.Items, CartItem{
		Product:   product,
		Quantity:  quantity,
		UnitPrice: unitPriceFor(product, c.CustomerType),
	})
	return nil
}

// SetQuantity fija la cantidad de un producto ya presente en el carrito.
// Cantidades menores a 1 son inválidas: para sacar el producto está RemoveItem.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return &InvalidQuantityError{Quantity: quantity}
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			if quantity > c.Items[i].Product.Stock {
				return &catalogEntity.InsufficientStockError{
					ProductID:   productID,
					ProductName: c.Items[i].Product.Name,
					Requested:   quantity,
					Available:   c.Items[i].Product.Stock,
				}
			}
			c.Items[i].Quantity = quantity
			return nil
		}
	}

	return ErrItemNotInCart
}

// RemoveItem saca un producto del carrito incondicionalmente
func (c *Cart) RemoveItem(productID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotInCart
}

// SetCustomerType cambia el tipo de cliente y re-precia todos los items
// en el lugar, sin tocar cantidades
func (c *Cart) SetCustomerType(customerType CustomerType) error {
	if !customerType.IsValid() {
		return ErrInvalidCustomerType
	}

	c.CustomerType = customerType
	for i := range c.Items {
		c.Items[i].UnitPrice = unitPriceFor(c.Items[i].Product, customerType)
	}
	return nil
}

// Subtotal retorna la suma de cantidad × precio unitario sobre todos los items
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for i := range c.Items {
		subtotal = subtotal.Add(c.Items[i].Subtotal())
	}
	return subtotal
}

// IsEmpty indica si el carrito no tiene items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Lines retorna el snapshot del carrito en la forma que consume el evaluador
// de promociones
func (c *Cart) Lines() []promotionEntity.CartLine {
	lines := make([]promotionEntity.CartLine, 0, len(c.Items))
	for i := range c.Items {
		lines = append(lines, promotionEntity.CartLine{
			ProductID: c.Items[i].Product.ID,
			Quantity:  c.Items[i].Quantity,
			UnitPrice: c.Items[i].UnitPrice,
		})
	}
	return lines
}

// unitPriceFor elige el precio unitario según el tipo de cliente
func unitPriceFor(product catalogEntity.Product, customerType CustomerType) decimal.Decimal {
	if customerType == CustomerTypeWholesale {
		return product.WholesalePrice
	}
	return product.ListPrice
}
