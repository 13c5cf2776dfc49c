package repository

import "github.com/psunilk13/rmc-doctypes/internal/domain/entity"

// LedgerRepository define el puerto hacia el libro mayor. CreateEntries
// recibe el comprobante completo y falla si débitos y créditos no balancean.
type LedgerRepository interface {
	CreateEntries(entries []entity.LedgerEntry) error
	ListByVoucher(voucherType, voucherNo string) ([]*entity.LedgerEntry, error)
}
