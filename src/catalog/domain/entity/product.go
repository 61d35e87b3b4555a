package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario (repuestos)
// La baja es lógica (Deleted=true) para preservar el historial de ventas
type Product struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	ListPrice      decimal.Decimal `json:"list_price"`      // Precio minorista
	WholesalePrice decimal.Decimal `json:"wholesale_price"` // Precio mayorista
	Stock          int             `json:"stock"`           // Nunca negativo
	MinStock       int             `json:"min_stock"`       // Umbral de stock bajo
	CategoryID     uuid.UUID       `json:"category_id"`
	Deleted        bool            `json:"deleted"`
}

// IsLowStock indica si el producto está por debajo de su umbral mínimo
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// IsSellable indica si el producto puede agregarse a un carrito
func (p *Product) IsSellable() bool {
	return !p.Deleted
}
