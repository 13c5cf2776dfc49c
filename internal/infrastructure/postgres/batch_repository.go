package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
	"github.com/psunilk13/rmc-doctypes/internal/domain/workflow"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con
// pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `
	id, company_id, bom_id, grade, source_warehouse, destination_warehouse,
	production_date, posting_time, quantity, production_cost, mixing_exempt,
	mixing_rate, total_raw_material_cost, total_mixing_cost, total_cost,
	per_unit_cost, workflow_state, status_changed_at, submitted, submitted_at,
	created_at, updated_at`

// Create inserta cabecera y líneas del lote.
func (r *BatchRepo) Create(batch *entity.ProductionBatch) error {
	ctx := context.Background()
	query := `
		INSERT INTO production_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		batch.ID, batch.CompanyID, batch.BOMID, batch.Grade,
		batch.SourceWarehouse, batch.DestinationWarehouse,
		batch.ProductionDate, batch.PostingTime, batch.Quantity,
		batch.ProductionCost, batch.MixingExempt, batch.MixingRate,
		batch.TotalRawMaterialCost, batch.TotalMixingCost, batch.TotalCost,
		batch.PerUnitCost, string(batch.WorkflowState), batch.StatusChangedAt,
		batch.Submitted, batch.SubmittedAt, batch.CreatedAt, batch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create batch: %w", err)
	}
	return r.insertLines(ctx, batch)
}

// GetByID carga el lote con sus líneas; nil si no existe.
func (r *BatchRepo) GetByID(id string) (*entity.ProductionBatch, error) {
	ctx := context.Background()
	query := `SELECT ` + batchColumns + ` FROM production_batches WHERE id = $1`
	batch, err := scanBatch(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}

	lines, err := r.loadLines(ctx, batch.ID)
	if err != nil {
		return nil, err
	}
	batch.RawMaterials = lines
	return batch, nil
}

// Update persiste cabecera (derivados incluidos) y reemplaza las líneas.
func (r *BatchRepo) Update(batch *entity.ProductionBatch) error {
	ctx := context.Background()
	query := `
		UPDATE production_batches
		SET bom_id = $2, grade = $3, source_warehouse = $4,
		    destination_warehouse = $5, production_date = $6, posting_time = $7,
		    quantity = $8, production_cost = $9, mixing_exempt = $10,
		    mixing_rate = $11, total_raw_material_cost = $12,
		    total_mixing_cost = $13, total_cost = $14, per_unit_cost = $15,
		    updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		batch.ID, batch.BOMID, batch.Grade, batch.SourceWarehouse,
		batch.DestinationWarehouse, batch.ProductionDate, batch.PostingTime,
		batch.Quantity, batch.ProductionCost, batch.MixingExempt,
		batch.MixingRate, batch.TotalRawMaterialCost, batch.TotalMixingCost,
		batch.TotalCost, batch.PerUnitCost,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM raw_material_lines WHERE batch_id = $1`, batch.ID); err != nil {
		return fmt.Errorf("replace batch lines: %w", err)
	}
	return r.insertLines(ctx, batch)
}

// SetState persiste el estado y su marca de tiempo.
func (r *BatchRepo) SetState(id string, state workflow.Status, changedAt time.Time) error {
	query := `
		UPDATE production_batches
		SET workflow_state = $2, status_changed_at = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, string(state), changedAt)
	if err != nil {
		return fmt.Errorf("set batch state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkSubmitted registra la confirmación del lote.
func (r *BatchRepo) MarkSubmitted(id string, at time.Time) error {
	query := `
		UPDATE production_batches
		SET submitted = true, submitted_at = $2, updated_at = now()
		WHERE id = $1 AND NOT submitted`
	tag, err := r.q.Exec(context.Background(), query, id, at)
	if err != nil {
		return fmt.Errorf("mark batch submitted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lotes de una empresa, sin líneas, más recientes primero.
func (r *BatchRepo) ListByCompany(companyID string) ([]*entity.ProductionBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM production_batches
		WHERE company_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []*entity.ProductionBatch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, batch)
	}
	return batches, rows.Err()
}

func (r *BatchRepo) insertLines(ctx context.Context, batch *entity.ProductionBatch) error {
	query := `
		INSERT INTO raw_material_lines (
			id, batch_id, item_code, item_name, description, uom,
			conversion_factor, estimated_qty, actual_qty, rate, amount,
			variance, variance_percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, line := range batch.RawMaterials {
		_, err := r.q.Exec(ctx, query,
			line.ID, batch.ID, line.ItemCode, line.ItemName, line.Description,
			line.UOM, line.ConversionFactor, line.EstimatedQty, line.ActualQty,
			line.Rate, line.Amount, line.Variance, line.VariancePercent,
		)
		if err != nil {
			return fmt.Errorf("insert batch line %s: %w", line.ItemCode, err)
		}
	}
	return nil
}

func (r *BatchRepo) loadLines(ctx context.Context, batchID string) ([]entity.RawMaterialLine, error) {
	query := `
		SELECT id, batch_id, item_code, item_name, description, uom,
		       conversion_factor, estimated_qty, actual_qty, rate, amount,
		       variance, variance_percent
		FROM raw_material_lines
		WHERE batch_id = $1
		ORDER BY item_code`
	rows, err := r.q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("load batch lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.RawMaterialLine
	for rows.Next() {
		var l entity.RawMaterialLine
		err := rows.Scan(
			&l.ID, &l.BatchID, &l.ItemCode, &l.ItemName, &l.Description,
			&l.UOM, &l.ConversionFactor, &l.EstimatedQty, &l.ActualQty,
			&l.Rate, &l.Amount, &l.Variance, &l.VariancePercent,
		)
		if err != nil {
			return nil, fmt.Errorf("scan batch line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func scanBatch(row pgx.Row) (*entity.ProductionBatch, error) {
	var b entity.ProductionBatch
	var state string
	err := row.Scan(
		&b.ID, &b.CompanyID, &b.BOMID, &b.Grade,
		&b.SourceWarehouse, &b.DestinationWarehouse,
		&b.ProductionDate, &b.PostingTime, &b.Quantity,
		&b.ProductionCost, &b.MixingExempt, &b.MixingRate,
		&b.TotalRawMaterialCost, &b.TotalMixingCost, &b.TotalCost,
		&b.PerUnitCost, &state, &b.StatusChangedAt,
		&b.Submitted, &b.SubmittedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.WorkflowState = workflow.Status(state)
	return &b, nil
}
