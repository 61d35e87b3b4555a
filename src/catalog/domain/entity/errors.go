package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// InsufficientStockError indica que la cantidad pedida supera el stock actual.
// Lleva el producto y los números involucrados para que el caller pueda corregir.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q (%s): requested %d, available %d",
		e.ProductName, e.ProductID, e.Requested, e.Available)
}
