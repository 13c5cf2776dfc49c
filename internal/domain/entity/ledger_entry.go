package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry es un renglón contable. Siempre se emiten en pares
// balanceados débito/crédito por comprobante; el colaborador contable
// rechaza comprobantes desbalanceados.
type LedgerEntry struct {
	ID          string
	CompanyID   string
	Account     string
	Against     string // contracuenta
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	CostCenter  string
	PostingDate time.Time
	Remarks     string
	VoucherType string
	VoucherNo   string
}

// LedgerBuilder completa los campos comunes de un comprobante (empresa,
// fecha, tipo y número de comprobante, centro de costo) y deja al caller
// solo los campos propios de cada renglón.
type LedgerBuilder struct {
	CompanyID   string
	PostingDate time.Time
	VoucherType string
	VoucherNo   string
	CostCenter  string
}

// Debit construye un renglón débito contra la contracuenta indicada.
func (b *LedgerBuilder) Debit(account, against string, amount decimal.Decimal, remarks string) LedgerEntry {
	e := b.base(account, against, remarks)
	e.Debit = amount
	return e
}

// Credit construye un renglón crédito contra la contracuenta indicada.
func (b *LedgerBuilder) Credit(account, against string, amount decimal.Decimal, remarks string) LedgerEntry {
	e := b.base(account, against, remarks)
	e.Credit = amount
	return e
}

func (b *LedgerBuilder) base(account, against, remarks string) LedgerEntry {
	return LedgerEntry{
		CompanyID:   b.CompanyID,
		Account:     account,
		Against:     against,
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
		CostCenter:  b.CostCenter,
		PostingDate: b.PostingDate,
		Remarks:     remarks,
		VoucherType: b.VoucherType,
		VoucherNo:   b.VoucherNo,
	}
}
