package postgres

import (
	"context"
	"fmt"

	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación de StockEntryRepository sobre PostgreSQL.
// El ajuste de existencias lo hace el colaborador de inventario; aquí el
// movimiento queda persistido como comprobante del lote.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Create inserta el movimiento y sus líneas.
func (r *StockEntryRepo) Create(entry *entity.StockEntry) error {
	ctx := context.Background()
	query := `
		INSERT INTO stock_entries (id, company_id, type, posting_date,
		                           posting_time, batch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.CompanyID, entry.Type, entry.PostingDate,
		entry.PostingTime, entry.BatchID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock entry: %w", err)
	}

	itemQuery := `
		INSERT INTO stock_entry_items (entry_id, item_code, qty, uom,
		                               source_warehouse, destination_warehouse,
		                               cost_center, rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, item := range entry.Items {
		_, err := r.q.Exec(ctx, itemQuery,
			entry.ID, item.ItemCode, item.Qty, item.UOM,
			item.SourceWarehouse, item.DestinationWarehouse,
			item.CostCenter, item.Rate,
		)
		if err != nil {
			return fmt.Errorf("create stock entry item %s: %w", item.ItemCode, err)
		}
	}
	return nil
}

// ListByBatch movimientos generados por un lote, en orden de creación.
func (r *StockEntryRepo) ListByBatch(batchID string) ([]*entity.StockEntry, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, type, posting_date, posting_time, batch_id, created_at
		FROM stock_entries
		WHERE batch_id = $1
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		err := rows.Scan(&e.ID, &e.CompanyID, &e.Type, &e.PostingDate,
			&e.PostingTime, &e.BatchID, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, e := range entries {
		items, err := r.loadItems(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		e.Items = items
	}
	return entries, nil
}

func (r *StockEntryRepo) loadItems(ctx context.Context, entryID string) ([]entity.StockEntryItem, error) {
	query := `
		SELECT item_code, qty, uom, source_warehouse, destination_warehouse,
		       cost_center, rate
		FROM stock_entry_items
		WHERE entry_id = $1
		ORDER BY item_code`
	rows, err := r.q.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("load stock entry items: %w", err)
	}
	defer rows.Close()

	var items []entity.StockEntryItem
	for rows.Next() {
		var it entity.StockEntryItem
		err := rows.Scan(&it.ItemCode, &it.Qty, &it.UOM, &it.SourceWarehouse,
			&it.DestinationWarehouse, &it.CostCenter, &it.Rate)
		if err != nil {
			return nil, fmt.Errorf("scan stock entry item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
