package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	catalogEntity "github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	catalogPersistence "github.com/EnzoManrique/TrailerApp/src/catalog/infrastructure/persistence"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/sales/domain/port"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL.
// El carrito y el evaluador nunca llegan acá: este repositorio solo materializa
// una venta ya armada, dentro de una transacción.
type SalePostgresRepository struct {
	db       *sql.DB
	products *catalogPersistence.ProductPostgresRepository
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB, products *catalogPersistence.ProductPostgresRepository) port.SaleRepository {
	return &SalePostgresRepository{
		db:       db,
		products: products,
	}
}

// Create persiste la venta, sus renglones y los descuentos de stock en una
// única transacción. Cualquier falla intermedia hace rollback de todo, el
// catálogo y el historial quedan como estaban.
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar la venta (aggregate root)
	querySale := `
		INSERT INTO ventas (
			id, fecha, total, tipo_cliente, aplico_promo, promocion_id
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.Date,
		sale.Total,
		string(sale.CustomerType),
		sale.AppliedPromo,
		sale.PromotionID, // NULL permitido
	)
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}

	// 2. Insertar los renglones
	queryItem := `
		INSERT INTO venta_detalles (
			id, venta_id, producto_id, cantidad, precio_unitario
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	for _, item := range sale.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ID,
			item.SaleID,
			item.ProductID,
			item.Quantity,
			item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("error creating sale line item for product %s: %w", item.ProductID, err)
		}
	}

	// 3. Descontar stock por cada renglón, dentro de la misma transacción.
	// El descuento condicional es la revalidación final contra el stock vigente:
	// una venta concurrente puede haberlo consumido desde que se armó el carrito.
	for _, item := range sale.Items {
		if err := r.products.DecrementStockTx(ctx, tx, item.ProductID, item.Quantity); err != nil {
			var stockErr *catalogEntity.InsufficientStockError
			if errors.As(err, &stockErr) {
				return stockErr
			}
			return fmt.Errorf("error decrementing stock for product %s: %w", item.ProductID, err)
		}
	}

	// Commit transacción
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// List retorna todas las ventas CON sus renglones, de la más reciente a la más vieja
func (r *SalePostgresRepository) List(ctx context.Context) ([]*entity.Sale, error) {
	querySales := `
		SELECT id, fecha, total, tipo_cliente, aplico_promo, promocion_id
		FROM ventas
		ORDER BY fecha DESC
	`

	rows, err := r.db.QueryContext(ctx, querySales)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale := &entity.Sale{}
		var customerType string
		err := rows.Scan(
			&sale.ID,
			&sale.Date,
			&sale.Total,
			&customerType,
			&sale.AppliedPromo,
			&sale.PromotionID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sale.CustomerType = entity.CustomerType(customerType)
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	// Cargar los renglones de cada venta
	queryItems := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario
		FROM venta_detalles
		WHERE venta_id = $1
	`

	for _, sale := range sales {
		itemRows, err := r.db.QueryContext(ctx, queryItems, sale.ID)
		if err != nil {
			return nil, fmt.Errorf("error querying sale line items: %w", err)
		}

		var items []entity.SaleLineItem
		for itemRows.Next() {
			item := entity.SaleLineItem{}
			err := itemRows.Scan(
				&item.ID,
				&item.SaleID,
				&item.ProductID,
				&item.Quantity,
				&item.UnitPrice,
			)
			if err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("error scanning sale line item: %w", err)
			}
			items = append(items, item)
		}

		itemRows.Close()

		if err = itemRows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating sale line items: %w", err)
		}

		sale.Items = items
	}

	return sales, nil
}
