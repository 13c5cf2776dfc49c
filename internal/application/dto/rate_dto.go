package dto

import "github.com/shopspring/decimal"

// SaveRateRequest alta o edición de una tarifa de mezclado.
type SaveRateRequest struct {
	Grade     string          `json:"grade"`
	Warehouse string          `json:"warehouse"`
	Rate      decimal.Decimal `json:"rate"`
	FromDate  string          `json:"from_date"` // YYYY-MM-DD
	ToDate    string          `json:"to_date"`   // YYYY-MM-DD
	Disabled  bool            `json:"disabled"`
}

// RateResponse tarifa persistida.
type RateResponse struct {
	ID        string          `json:"id"`
	Grade     string          `json:"grade"`
	Warehouse string          `json:"warehouse"`
	Rate      decimal.Decimal `json:"rate"`
	FromDate  string          `json:"from_date"`
	ToDate    string          `json:"to_date"`
	Disabled  bool            `json:"disabled"`
}
