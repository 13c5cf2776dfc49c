package repository

import "github.com/psunilk13/rmc-doctypes/internal/domain/entity"

// StockEntryRepository define el puerto de persistencia de movimientos de
// inventario. Usado dentro de transacciones junto al cambio de estado.
type StockEntryRepository interface {
	Create(entry *entity.StockEntry) error
	ListByBatch(batchID string) ([]*entity.StockEntry, error)
}
