package entity

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart           = errors.New("cart must have at least one item")
	ErrCartSessionNotFound = errors.New("cart session not found")
	ErrItemNotInCart       = errors.New("product is not in the cart")
	ErrInvalidCustomerType = errors.New("customer_type must be Lista or Mayorista")
	ErrInvalidDiscount     = errors.New("discount must be between zero and the cart subtotal")
)

// InvalidQuantityError indica una cantidad no positiva
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0, got %d", e.Quantity)
}

// PersistenceError envuelve una falla del store durante el commit de una venta.
// El motor no reintenta: reintentar una transacción multi-registro fallida sin
// conocer el modo de falla arriesga doble cobro o doble descuento de stock.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
