package dto

import "github.com/shopspring/decimal"

// RawMaterialLineInput línea de materia prima al crear/editar un lote.
type RawMaterialLineInput struct {
	ItemCode         string          `json:"item_code"`
	ItemName         string          `json:"item_name"`
	Description      string          `json:"description"`
	UOM              string          `json:"uom"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
	EstimatedQty     decimal.Decimal `json:"estimated_qty"`
	ActualQty        decimal.Decimal `json:"actual_qty"`
	Rate             decimal.Decimal `json:"rate"`
}

// CreateBatchRequest alta de un lote en borrador.
type CreateBatchRequest struct {
	BOMID                string                 `json:"bom_id"`
	Grade                string                 `json:"grade"`
	SourceWarehouse      string                 `json:"source_warehouse"`
	DestinationWarehouse string                 `json:"destination_warehouse"`
	ProductionDate       string                 `json:"production_date"` // YYYY-MM-DD
	PostingTime          string                 `json:"posting_time"`    // HH:MM:SS
	Quantity             decimal.Decimal        `json:"quantity"`
	ProductionCost       decimal.Decimal        `json:"production_cost"`
	MixingExempt         bool                   `json:"mixing_exempt"`
	RawMaterials         []RawMaterialLineInput `json:"raw_materials"`
}

// RawMaterialLineResponse línea con sus campos derivados.
type RawMaterialLineResponse struct {
	ItemCode        string          `json:"item_code"`
	ItemName        string          `json:"item_name"`
	UOM             string          `json:"uom"`
	EstimatedQty    decimal.Decimal `json:"estimated_qty"`
	ActualQty       decimal.Decimal `json:"actual_qty"`
	Rate            decimal.Decimal `json:"rate"`
	Amount          decimal.Decimal `json:"amount"`
	Variance        decimal.Decimal `json:"variance"`
	VariancePercent decimal.Decimal `json:"variance_percent"`
}

// BatchResponse lote con costos derivados y estado.
type BatchResponse struct {
	ID                   string                    `json:"id"`
	CompanyID            string                    `json:"company_id"`
	BOMID                string                    `json:"bom_id,omitempty"`
	Grade                string                    `json:"grade"`
	SourceWarehouse      string                    `json:"source_warehouse"`
	DestinationWarehouse string                    `json:"destination_warehouse"`
	ProductionDate       string                    `json:"production_date"`
	Quantity             decimal.Decimal           `json:"quantity"`
	ProductionCost       decimal.Decimal           `json:"production_cost"`
	MixingRate           decimal.Decimal           `json:"mixing_rate"`
	TotalRawMaterialCost decimal.Decimal           `json:"total_raw_material_cost"`
	TotalMixingCost      decimal.Decimal           `json:"total_mixing_cost"`
	TotalCost            decimal.Decimal           `json:"total_cost"`
	PerUnitCost          decimal.Decimal           `json:"per_unit_cost"`
	WorkflowState        string                    `json:"workflow_state"`
	Submitted            bool                      `json:"submitted"`
	RawMaterials         []RawMaterialLineResponse `json:"raw_materials"`
}

// UpdateStatusRequest cambio de estado de un lote confirmado.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BulkStatusRequest cambio de estado masivo.
type BulkStatusRequest struct {
	BatchIDs []string `json:"batch_ids"`
	Status   string   `json:"status"`
}

// BulkStatusResponse partición del resultado masivo.
type BulkStatusResponse struct {
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

// StatusInfoResponse antigüedad del estado actual para tableros.
type StatusInfoResponse struct {
	Hours   float64 `json:"hours"`
	Alert   bool    `json:"alert"`
	Message string  `json:"message"`
}
