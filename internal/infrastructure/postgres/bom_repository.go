package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo lectura de recetas sobre PostgreSQL (colaborador externo,
// solo consulta).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// GetByID carga la receta con sus componentes; nil si no existe.
func (r *BOMRepo) GetByID(id string) (*entity.BOM, error) {
	ctx := context.Background()
	var bom entity.BOM
	err := r.q.QueryRow(ctx,
		`SELECT id, grade, quantity FROM boms WHERE id = $1`, id,
	).Scan(&bom.ID, &bom.Grade, &bom.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT item_code, item_name, description, uom, conversion_factor,
		       quantity, rate
		FROM bom_items
		WHERE bom_id = $1
		ORDER BY item_code`, id)
	if err != nil {
		return nil, fmt.Errorf("load bom items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.BOMItem
		err := rows.Scan(&it.ItemCode, &it.ItemName, &it.Description, &it.UOM,
			&it.ConversionFactor, &it.Quantity, &it.Rate)
		if err != nil {
			return nil, fmt.Errorf("scan bom item: %w", err)
		}
		bom.Items = append(bom.Items, it)
	}
	return &bom, rows.Err()
}
