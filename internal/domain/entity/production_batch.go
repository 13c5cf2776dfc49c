package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/psunilk13/rmc-doctypes/internal/domain/workflow"
)

// ProductionBatch es un lote de producción de concreto premezclado:
// consumo de materias primas, costos derivados y estado de entrega.
// Los campos Total*, PerUnitCost y los derivados de cada línea los
// recalcula costing.Apply en cada validación; no se editan a mano.
type ProductionBatch struct {
	ID                   string
	CompanyID            string
	BOMID                string // opcional; requerido solo para LoadBOMMaterials
	Grade                string
	SourceWarehouse      string
	DestinationWarehouse string
	ProductionDate       time.Time
	PostingTime          string
	Quantity             decimal.Decimal // cantidad producida (m³)
	ProductionCost       decimal.Decimal // overhead manual, default 0
	MixingExempt         bool            // true = el lote no lleva cargo de mezclado
	MixingRate           decimal.Decimal // derivado: tarifa vigente en ProductionDate
	TotalRawMaterialCost decimal.Decimal
	TotalMixingCost      decimal.Decimal
	TotalCost            decimal.Decimal
	PerUnitCost          decimal.Decimal
	RawMaterials         []RawMaterialLine
	WorkflowState        workflow.Status
	StatusChangedAt      *time.Time
	Submitted            bool
	SubmittedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RawMaterialLine es una línea de consumo de materia prima del lote.
type RawMaterialLine struct {
	ID               string
	BatchID          string
	ItemCode         string
	ItemName         string
	Description      string
	UOM              string
	ConversionFactor decimal.Decimal
	EstimatedQty     decimal.Decimal // estimado según BOM
	ActualQty        decimal.Decimal // consumo real; > 0 al validar
	Rate             decimal.Decimal
	Amount           decimal.Decimal // derivado: Rate * ActualQty
	Variance         decimal.Decimal // derivado: ActualQty - EstimatedQty
	VariancePercent  decimal.Decimal // derivado: 0 si EstimatedQty es 0
}
