package production

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
	"github.com/psunilk13/rmc-doctypes/internal/domain/workflow"
)

// DocketData datos de la remisión de entrega de un lote.
type DocketData struct {
	CompanyName          string
	BatchID              string
	Grade                string
	ProductionDate       string
	Quantity             decimal.Decimal
	PerUnitCost          decimal.Decimal
	TotalCost            decimal.Decimal
	SourceWarehouse      string
	DestinationWarehouse string
	Movements            []DocketMovement
}

// DocketMovement resumen de un movimiento del historial del lote.
type DocketMovement struct {
	Type string
	From string
	To   string
	Date string
}

// DocketUseCase genera la remisión de entrega en PDF de un lote entregado.
type DocketUseCase struct {
	batchRepo   repository.BatchRepository
	stockRepo   repository.StockEntryRepository
	companyRepo repository.CompanyRepository
	generator   DocketGenerator
}

// NewDocketUseCase construye el caso de uso.
func NewDocketUseCase(
	batchRepo repository.BatchRepository,
	stockRepo repository.StockEntryRepository,
	companyRepo repository.CompanyRepository,
	generator DocketGenerator,
) *DocketUseCase {
	return &DocketUseCase{
		batchRepo:   batchRepo,
		stockRepo:   stockRepo,
		companyRepo: companyRepo,
		generator:   generator,
	}
}

// BuildDocket arma y renderiza la remisión. Solo lotes en estado Delivered.
func (uc *DocketUseCase) BuildDocket(batchID string) ([]byte, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.WorkflowState != workflow.StatusDelivered {
		return nil, fmt.Errorf("%w: la remisión solo aplica a lotes entregados (estado actual %s)",
			domain.ErrValidation, batch.WorkflowState)
	}

	company, err := uc.companyRepo.GetByID(batch.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	entries, err := uc.stockRepo.ListByBatch(batch.ID)
	if err != nil {
		return nil, err
	}

	data := DocketData{
		CompanyName:          company.Name,
		BatchID:              batch.ID,
		Grade:                batch.Grade,
		ProductionDate:       batch.ProductionDate.Format("2006-01-02"),
		Quantity:             batch.Quantity,
		PerUnitCost:          batch.PerUnitCost,
		TotalCost:            batch.TotalCost,
		SourceWarehouse:      batch.SourceWarehouse,
		DestinationWarehouse: batch.DestinationWarehouse,
	}
	for _, e := range entries {
		mov := DocketMovement{Type: e.Type, Date: e.PostingDate.Format("2006-01-02")}
		if len(e.Items) > 0 {
			mov.From = e.Items[0].SourceWarehouse
			mov.To = e.Items[0].DestinationWarehouse
		}
		data.Movements = append(data.Movements, mov)
	}

	return uc.generator.Generate(data)
}
