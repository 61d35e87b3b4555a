package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/catalog/domain/port"
)

// CategoryPostgresRepository implementa CategoryRepository usando PostgreSQL
type CategoryPostgresRepository struct {
	db *sql.DB
}

// NewCategoryPostgresRepository crea una nueva instancia del repositorio
func NewCategoryPostgresRepository(db *sql.DB) port.CategoryRepository {
	return &CategoryPostgresRepository{db: db}
}

// List retorna todas las categorías ordenadas por nombre
func (r *CategoryPostgresRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, nombre FROM categorias ORDER BY nombre ASC")
	if err != nil {
		return nil, fmt.Errorf("error querying categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		category := &entity.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("error scanning category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
