// Package costing calcula los costos derivados de un lote (servicio de
// dominio, funciones puras). Se re-ejecuta en cada validación; solo
// escribe campos derivados, nunca los de entrada.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Apply recalcula importes y varianzas por línea y los totales del lote:
//
//	TotalRawMaterialCost = Σ línea.Amount
//	TotalMixingCost      = MixingRate * Quantity
//	TotalCost            = TotalRawMaterialCost + ProductionCost + TotalMixingCost
//	PerUnitCost          = TotalCost / Quantity  (0 si Quantity es 0)
func Apply(b *entity.ProductionBatch) {
	total := decimal.Zero
	for i := range b.RawMaterials {
		line := &b.RawMaterials[i]
		line.Amount = line.Rate.Mul(line.ActualQty)
		line.Variance, line.VariancePercent = Variance(line.ActualQty, line.EstimatedQty)
		total = total.Add(line.Amount)
	}
	b.TotalRawMaterialCost = total
	b.TotalMixingCost = b.MixingRate.Mul(b.Quantity)
	b.TotalCost = b.TotalRawMaterialCost.Add(b.ProductionCost).Add(b.TotalMixingCost)
	if b.Quantity.IsZero() {
		b.PerUnitCost = decimal.Zero
	} else {
		b.PerUnitCost = b.TotalCost.Div(b.Quantity)
	}
}

// Variance devuelve la varianza absoluta y porcentual entre consumo real
// y estimado. Porcentaje 0 cuando el estimado es 0 (líneas manuales sin BOM).
func Variance(actual, estimated decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	variance := actual.Sub(estimated)
	if estimated.IsZero() {
		return variance, decimal.Zero
	}
	return variance, variance.Div(estimated).Mul(hundred)
}
