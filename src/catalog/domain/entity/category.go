package entity

import "github.com/google/uuid"

// Category representa una categoría de productos
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
