package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/port"
	domainCriteria "github.com/EnzoManrique/TrailerApp/src/shared/domain/criteria"
	infraCriteria "github.com/EnzoManrique/TrailerApp/src/shared/infrastructure/criteria"

	"github.com/google/uuid"
)

const productColumns = `
	id, nombre, descripcion, precio_costo, precio_lista,
	precio_mayorista, stock_actual, stock_minimo, categoria_id, eliminado
`

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db        *sql.DB
	converter *infraCriteria.SQLCriteriaConverter
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{
		db:        db,
		converter: infraCriteria.NewSQLCriteriaConverter(),
	}
}

var _ port.ProductRepository = (*ProductPostgresRepository)(nil)

// GetByID retorna un producto por id
func (r *ProductPostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM productos WHERE id = $1", productColumns)

	product, err := r.scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("error querying product %s: %w", id, err)
	}

	return product, nil
}

// Search retorna productos no eliminados según el criteria, con el total sin paginar
func (r *ProductPostgresRepository) Search(ctx context.Context, criteria domainCriteria.Criteria) ([]*entity.Product, int, error) {
	// El filtro de eliminados es fijo: los productos dados de baja no se listan
	criteria.Filters.Add(domainCriteria.NewFilter("eliminado", domainCriteria.OpEqual, false))

	baseQuery := fmt.Sprintf("SELECT %s FROM productos", productColumns)
	query, params := r.converter.ToSelectSQL(baseQuery, criteria)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	// Total sin paginar para que el caller arme la paginación
	countQuery, countParams := r.converter.ToCountSQL("SELECT COUNT(*) FROM productos", criteria)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting products: %w", err)
	}

	return products, total, nil
}

// ListLowStock retorna productos no eliminados con stock igual o menor a su mínimo
func (r *ProductPostgresRepository) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM productos
		WHERE eliminado = FALSE AND stock_actual <= stock_minimo
		ORDER BY stock_actual ASC, nombre ASC
	`, productColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying low stock products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating low stock products: %w", err)
	}

	return products, nil
}

// DecrementStockTx descuenta stock dentro de una transacción abierta por el caller.
// El descuento es condicional (stock_actual >= cantidad): si no alcanza, retorna
// InsufficientStockError con el stock vigente y no modifica nada.
func (r *ProductPostgresRepository) DecrementStockTx(ctx context.Context, tx *sql.Tx, productID uuid.UUID, quantity int) error {
	query := `
		UPDATE productos
		SET stock_actual = stock_actual - $1
		WHERE id = $2 AND eliminado = FALSE AND stock_actual >= $1
	`

	result, err := tx.ExecContext(ctx, query, quantity, productID)
	if err != nil {
		return fmt.Errorf("error decrementing stock for product %s: %w", productID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking stock decrement for product %s: %w", productID, err)
	}

	if affected == 0 {
		// El descuento fue rechazado: reportar producto y stock vigente
		var name string
		var stock int
		err := tx.QueryRowContext(ctx,
			"SELECT nombre, stock_actual FROM productos WHERE id = $1", productID,
		).Scan(&name, &stock)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return entity.ErrProductNotFound
			}
			return fmt.Errorf("error reading stock for product %s: %w", productID, err)
		}

		return &entity.InsufficientStockError{
			ProductID:   productID,
			ProductName: name,
			Requested:   quantity,
			Available:   stock,
		}
	}

	return nil
}

// rowScanner abstrae *sql.Row y *sql.Rows para compartir el scan
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ProductPostgresRepository) scanProduct(row rowScanner) (*entity.Product, error) {
	product := &entity.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.CostPrice,
		&product.ListPrice,
		&product.WholesalePrice,
		&product.Stock,
		&product.MinStock,
		&product.CategoryID,
		&product.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}
