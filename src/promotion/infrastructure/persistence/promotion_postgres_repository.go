package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/EnzoManrique/TrailerApp/src/promotion/domain/entity"
	"github.com/EnzoManrique/TrailerApp/src/promotion/domain/port"

	"github.com/google/uuid"
)

// PromotionPostgresRepository implementa PromotionRepository usando PostgreSQL
type PromotionPostgresRepository struct {
	db *sql.DB
}

// NewPromotionPostgresRepository crea una nueva instancia del repositorio
func NewPromotionPostgresRepository(db *sql.DB) port.PromotionRepository {
	return &PromotionPostgresRepository{db: db}
}

// ListActive retorna las promociones activas.
// El orden (nombre, id) es parte del contrato: define quién gana un empate
// de descuento en la evaluación.
func (r *PromotionPostgresRepository) ListActive(ctx context.Context) ([]*entity.Promotion, error) {
	query := `
		SELECT id, nombre, porcentaje_descuento, activa
		FROM promociones
		WHERE activa = TRUE
		ORDER BY nombre ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying active promotions: %w", err)
	}
	defer rows.Close()

	var promotions []*entity.Promotion
	for rows.Next() {
		promotion := &entity.Promotion{}
		err := rows.Scan(
			&promotion.ID,
			&promotion.Name,
			&promotion.DiscountPercentage,
			&promotion.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning promotion: %w", err)
		}
		promotions = append(promotions, promotion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating promotions: %w", err)
	}

	return promotions, nil
}

// GetRequirements retorna los requisitos de una promoción
func (r *PromotionPostgresRepository) GetRequirements(ctx context.Context, promotionID uuid.UUID) ([]entity.PromotionRequirement, error) {
	query := `
		SELECT promocion_id, producto_id, cantidad_requerida
		FROM promocion_productos
		WHERE promocion_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, promotionID)
	if err != nil {
		return nil, fmt.Errorf("error querying requirements for promotion %s: %w", promotionID, err)
	}
	defer rows.Close()

	var requirements []entity.PromotionRequirement
	for rows.Next() {
		req := entity.PromotionRequirement{}
		if err := rows.Scan(&req.PromotionID, &req.ProductID, &req.RequiredQuantity); err != nil {
			return nil, fmt.Errorf("error scanning promotion requirement: %w", err)
		}
		requirements = append(requirements, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating promotion requirements: %w", err)
	}

	return requirements, nil
}
