package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// CreateEntries inserta el comprobante completo. Débitos y créditos deben
// balancear; un comprobante desbalanceado se rechaza sin insertar nada.
func (r *LedgerRepo) CreateEntries(entries []entity.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	if !debit.Equal(credit) {
		return fmt.Errorf("%w: comprobante desbalanceado (débito %s, crédito %s)",
			domain.ErrValidation, debit, credit)
	}

	query := `
		INSERT INTO ledger_entries (id, company_id, account, against, debit,
		                            credit, cost_center, posting_date, remarks,
		                            voucher_type, voucher_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, e := range entries {
		id := e.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := r.q.Exec(context.Background(), query,
			id, e.CompanyID, e.Account, e.Against, e.Debit, e.Credit,
			e.CostCenter, e.PostingDate, e.Remarks, e.VoucherType, e.VoucherNo,
		)
		if err != nil {
			return fmt.Errorf("create ledger entry %s: %w", e.Account, err)
		}
	}
	return nil
}

// ListByVoucher renglones de un comprobante.
func (r *LedgerRepo) ListByVoucher(voucherType, voucherNo string) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, company_id, account, against, debit, credit, cost_center,
		       posting_date, remarks, voucher_type, voucher_no
		FROM ledger_entries
		WHERE voucher_type = $1 AND voucher_no = $2
		ORDER BY account`
	rows, err := r.q.Query(context.Background(), query, voucherType, voucherNo)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		err := rows.Scan(&e.ID, &e.CompanyID, &e.Account, &e.Against,
			&e.Debit, &e.Credit, &e.CostCenter, &e.PostingDate, &e.Remarks,
			&e.VoucherType, &e.VoucherNo)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
