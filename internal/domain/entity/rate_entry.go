package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateEntry es una tarifa de mezclado por grado y planta, vigente en un
// rango de fechas inclusivo [FromDate, ToDate]. Para un mismo (grado,
// planta) no pueden existir dos tarifas habilitadas con rangos que se
// solapen; la capa de aplicación lo valida en cada alta y edición.
type RateEntry struct {
	ID        string
	Grade     string
	Warehouse string
	Rate      decimal.Decimal // cargo de mezclado por unidad producida
	FromDate  time.Time
	ToDate    time.Time
	Disabled  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains indica si la fecha cae dentro del rango de vigencia (extremos inclusivos).
func (r *RateEntry) Contains(date time.Time) bool {
	return !date.Before(r.FromDate) && !date.After(r.ToDate)
}

// Overlaps indica si dos rangos de vigencia se intersectan (extremos inclusivos).
// Tres casos: from dentro del otro rango, to dentro del otro rango, o el
// candidato contiene completamente al existente.
func (r *RateEntry) Overlaps(from, to time.Time) bool {
	if !from.Before(r.FromDate) && !from.After(r.ToDate) {
		return true
	}
	if !to.Before(r.FromDate) && !to.After(r.ToDate) {
		return true
	}
	return from.Before(r.FromDate) && to.After(r.ToDate)
}
