// Package production implementa el ciclo de vida del lote de producción:
// borrador -> validación -> confirmación (Produced) -> In-Transit ->
// Delivered, con sus movimientos de inventario y asientos contables.
package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/psunilk13/rmc-doctypes/internal/application/dto"
	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/costing"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
	"github.com/psunilk13/rmc-doctypes/internal/domain/workflow"
	"github.com/psunilk13/rmc-doctypes/pkg/logger"
)

// VoucherType referencia de comprobante para movimientos y asientos del lote.
const VoucherType = "Production Batch"

// Config parámetros operativos del ciclo de producción.
type Config struct {
	TransitWarehouse string // bodega de tránsito entre planta y obra
	Thresholds       workflow.AlertThresholds
}

// UseCase casos de uso del lote de producción.
type UseCase struct {
	txRunner    TxRunner
	batchRepo   repository.BatchRepository
	bomRepo     repository.BOMRepository
	companyRepo repository.CompanyRepository
	rates       RateSource
	provisioner AccountProvisioner
	cfg         Config
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	batchRepo repository.BatchRepository,
	bomRepo repository.BOMRepository,
	companyRepo repository.CompanyRepository,
	rates RateSource,
	provisioner AccountProvisioner,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	if cfg.Thresholds == (workflow.AlertThresholds{}) {
		cfg.Thresholds = workflow.DefaultThresholds()
	}
	return &UseCase{
		txRunner:    txRunner,
		batchRepo:   batchRepo,
		bomRepo:     bomRepo,
		companyRepo: companyRepo,
		rates:       rates,
		provisioner: provisioner,
		cfg:         cfg,
		log:         log,
	}
}

// CreateBatch da de alta un lote en borrador, validado y con costos calculados.
func (uc *UseCase) CreateBatch(companyID string, in dto.CreateBatchRequest) (*entity.ProductionBatch, error) {
	if in.Grade == "" || in.SourceWarehouse == "" || in.DestinationWarehouse == "" {
		return nil, domain.ErrInvalidInput
	}
	prodDate, err := time.Parse(dto.DateLayout, in.ProductionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de producción %q", domain.ErrInvalidInput, in.ProductionDate)
	}
	if in.Quantity.LessThan(decimal.Zero) || in.ProductionCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	batch := &entity.ProductionBatch{
		ID:                   uuid.New().String(),
		CompanyID:            companyID,
		BOMID:                in.BOMID,
		Grade:                in.Grade,
		SourceWarehouse:      in.SourceWarehouse,
		DestinationWarehouse: in.DestinationWarehouse,
		ProductionDate:       prodDate,
		PostingTime:          in.PostingTime,
		Quantity:             in.Quantity,
		ProductionCost:       in.ProductionCost,
		MixingExempt:         in.MixingExempt,
		WorkflowState:        workflow.StatusDraft,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, l := range in.RawMaterials {
		batch.RawMaterials = append(batch.RawMaterials, entity.RawMaterialLine{
			ID:               uuid.New().String(),
			BatchID:          batch.ID,
			ItemCode:         l.ItemCode,
			ItemName:         l.ItemName,
			Description:      l.Description,
			UOM:              l.UOM,
			ConversionFactor: l.ConversionFactor,
			EstimatedQty:     l.EstimatedQty,
			ActualQty:        l.ActualQty,
			Rate:             l.Rate,
		})
	}

	if err := uc.Validate(batch); err != nil {
		return nil, err
	}
	if err := uc.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Validate corre la validación completa del lote y recalcula derivados:
// materiales, tarifa de mezclado, costos/varianzas y cuentas contables.
// Idempotente; se invoca en cada alta, edición y confirmación.
func (uc *UseCase) Validate(batch *entity.ProductionBatch) error {
	if err := uc.validateMaterials(batch); err != nil {
		return err
	}

	// La búsqueda de tarifa o bien retorna la vigente o falla explícito;
	// nunca degrada en silencio a cero tras una búsqueda fallida. Cero solo
	// cuando el lote está marcado exento de cargo de mezclado.
	if batch.MixingExempt {
		batch.MixingRate = decimal.Zero
	} else {
		rate, err := uc.rates.GetRate(batch.Grade, batch.SourceWarehouse, batch.ProductionDate)
		if err != nil {
			return err
		}
		batch.MixingRate = rate
	}

	costing.Apply(batch)

	if batch.TotalMixingCost.GreaterThan(decimal.Zero) {
		if err := uc.validateAccounts(batch.CompanyID); err != nil {
			return err
		}
	}
	return nil
}

// validateMaterials exige al menos una línea y consumo real positivo en todas.
func (uc *UseCase) validateMaterials(batch *entity.ProductionBatch) error {
	if len(batch.RawMaterials) == 0 {
		return fmt.Errorf("%w: las materias primas no pueden estar vacías", domain.ErrValidation)
	}
	for _, line := range batch.RawMaterials {
		if !line.ActualQty.GreaterThan(decimal.Zero) {
			return fmt.Errorf("%w: la cantidad debe ser mayor a cero para %s",
				domain.ErrValidation, line.ItemName)
		}
	}
	return nil
}

// validateAccounts asegura cuentas y centro de costo antes de confirmar.
func (uc *UseCase) validateAccounts(companyID string) error {
	if _, err := uc.provisioner.EnsureAccounts(companyID); err != nil {
		return err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if company.CostCenter == "" {
		return fmt.Errorf("%w: empresa %s", domain.ErrMissingCostCenter, company.Name)
	}
	return nil
}

// Submit confirma el lote: valida, persiste derivados y, en una sola
// transacción, pasa a Produced y registra el consumo de materias primas,
// el alta del producto terminado y el par contable de cargos de mezclado.
func (uc *UseCase) Submit(ctx context.Context, batchID string) (*entity.ProductionBatch, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.Submitted {
		return nil, fmt.Errorf("%w: el lote %s ya está confirmado", domain.ErrValidation, batch.ID)
	}

	if err := uc.Validate(batch); err != nil {
		return nil, err
	}
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}

	company, err := uc.companyRepo.GetByID(batch.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		stockRepo repository.StockEntryRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		if err := batchRepo.MarkSubmitted(batch.ID, now); err != nil {
			return err
		}
		if err := batchRepo.SetState(batch.ID, workflow.StatusProduced, now); err != nil {
			return err
		}
		// Consumo de materias primas desde la planta de origen
		if err := stockRepo.Create(uc.issueEntry(batch, company, now)); err != nil {
			return err
		}
		// Alta del producto terminado en la planta de origen
		if err := stockRepo.Create(uc.receiptEntry(batch, company, now)); err != nil {
			return err
		}
		if batch.TotalMixingCost.GreaterThan(decimal.Zero) {
			entries, err := uc.mixingChargeEntries(batch, company)
			if err != nil {
				return err
			}
			if err := ledgerRepo.CreateEntries(entries); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}

	batch.Submitted = true
	batch.SubmittedAt = &now
	batch.WorkflowState = workflow.StatusProduced
	batch.StatusChangedAt = &now
	return batch, nil
}

// UpdateStatus avanza el estado de un lote confirmado y registra el traslado
// correspondiente; estado y movimiento se confirman en la misma transacción.
func (uc *UseCase) UpdateStatus(ctx context.Context, batchID string, target workflow.Status) error {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return err
	}
	if batch == nil {
		return domain.ErrNotFound
	}
	if !batch.Submitted {
		return fmt.Errorf("%w: lote %s", domain.ErrNotSubmitted, batch.ID)
	}

	newState, err := workflow.Transition(batch.WorkflowState, target)
	if err != nil {
		return err
	}

	company, err := uc.companyRepo.GetByID(batch.CompanyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}

	var transfer *entity.StockEntry
	now := time.Now()
	switch newState {
	case workflow.StatusInTransit:
		transfer = uc.transferEntry(batch, company, batch.SourceWarehouse, uc.cfg.TransitWarehouse, now)
	case workflow.StatusDelivered:
		transfer = uc.transferEntry(batch, company, uc.cfg.TransitWarehouse, batch.DestinationWarehouse, now)
	}

	err = uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		stockRepo repository.StockEntryRepository,
		_ repository.LedgerRepository,
	) error {
		if err := batchRepo.SetState(batch.ID, newState, now); err != nil {
			return err
		}
		return stockRepo.Create(transfer)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}
	return nil
}

// BulkUpdateStatus aplica la transición a cada lote de forma independiente:
// el fallo de uno no aborta el resto. Cada fallo queda en el log con su causa.
func (uc *UseCase) BulkUpdateStatus(ctx context.Context, batchIDs []string, target workflow.Status) dto.BulkStatusResponse {
	result := dto.BulkStatusResponse{Succeeded: []string{}, Failed: []string{}}
	for _, id := range batchIDs {
		if err := uc.UpdateStatus(ctx, id, target); err != nil {
			uc.log.Warn().Str("batch", id).Str("target", string(target)).Err(err).
				Msg("cambio de estado masivo: lote fallido")
			result.Failed = append(result.Failed, id)
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}
	return result
}

// StatusInfo devuelve la antigüedad del estado actual del lote para tableros.
func (uc *UseCase) StatusInfo(batchID string, now time.Time) (*workflow.AgeInfo, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	return workflow.Age(batch.WorkflowState, batch.StatusChangedAt, now, uc.cfg.Thresholds), nil
}

// GetMixingRate resuelve y persiste la tarifa de mezclado vigente del lote.
func (uc *UseCase) GetMixingRate(batchID string) (decimal.Decimal, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return decimal.Zero, err
	}
	if batch == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	if batch.MixingExempt {
		return decimal.Zero, nil
	}
	// Tras la confirmación la valoración quedó asentada en el libro mayor;
	// devolvemos la tarifa guardada sin recalcular costos.
	if batch.Submitted {
		return batch.MixingRate, nil
	}
	rate, err := uc.rates.GetRate(batch.Grade, batch.SourceWarehouse, batch.ProductionDate)
	if err != nil {
		return decimal.Zero, err
	}
	batch.MixingRate = rate
	costing.Apply(batch)
	if err := uc.batchRepo.Update(batch); err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

// LoadBOMMaterials reemplaza las líneas del lote con los componentes de la
// receta, escalando cantidades por (cantidad producida / cantidad del BOM).
// El consumo real arranca igual al estimado, con varianza cero.
func (uc *UseCase) LoadBOMMaterials(batchID string) (*entity.ProductionBatch, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.Submitted {
		return nil, fmt.Errorf("%w: el lote %s ya está confirmado", domain.ErrValidation, batch.ID)
	}
	if batch.BOMID == "" {
		return nil, domain.ErrNoBOMSelected
	}

	bom, err := uc.bomRepo.GetByID(batch.BOMID)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	if bom.Quantity.IsZero() {
		return nil, fmt.Errorf("%w: el BOM %s tiene cantidad de referencia cero", domain.ErrValidation, bom.ID)
	}

	factor := batch.Quantity.Div(bom.Quantity)
	batch.RawMaterials = batch.RawMaterials[:0]
	for _, item := range bom.Items {
		estimated := item.Quantity.Mul(factor)
		batch.RawMaterials = append(batch.RawMaterials, entity.RawMaterialLine{
			ID:               uuid.New().String(),
			BatchID:          batch.ID,
			ItemCode:         item.ItemCode,
			ItemName:         item.ItemName,
			Description:      item.Description,
			UOM:              item.UOM,
			ConversionFactor: item.ConversionFactor,
			EstimatedQty:     estimated,
			ActualQty:        estimated,
			Rate:             item.Rate,
		})
	}

	costing.Apply(batch)
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// GetBatch carga un lote con sus líneas.
func (uc *UseCase) GetBatch(batchID string) (*entity.ProductionBatch, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	return batch, nil
}

// ListBatches lista los lotes de una empresa.
func (uc *UseCase) ListBatches(companyID string) ([]*entity.ProductionBatch, error) {
	return uc.batchRepo.ListByCompany(companyID)
}

// issueEntry movimiento de consumo: todas las líneas salen de la planta origen.
func (uc *UseCase) issueEntry(batch *entity.ProductionBatch, company *entity.Company, now time.Time) *entity.StockEntry {
	entry := &entity.StockEntry{
		ID:          uuid.New().String(),
		CompanyID:   batch.CompanyID,
		Type:        entity.StockEntryIssue,
		PostingDate: batch.ProductionDate,
		PostingTime: batch.PostingTime,
		BatchID:     batch.ID,
		CreatedAt:   now,
	}
	for _, line := range batch.RawMaterials {
		entry.Items = append(entry.Items, entity.StockEntryItem{
			ItemCode:        line.ItemCode,
			Qty:             line.ActualQty,
			UOM:             line.UOM,
			SourceWarehouse: batch.SourceWarehouse,
			CostCenter:      company.CostCenter,
		})
	}
	return entry
}

// receiptEntry movimiento de alta del concreto producido, valuado al costo unitario.
func (uc *UseCase) receiptEntry(batch *entity.ProductionBatch, company *entity.Company, now time.Time) *entity.StockEntry {
	return &entity.StockEntry{
		ID:          uuid.New().String(),
		CompanyID:   batch.CompanyID,
		Type:        entity.StockEntryReceipt,
		PostingDate: batch.ProductionDate,
		PostingTime: batch.PostingTime,
		BatchID:     batch.ID,
		CreatedAt:   now,
		Items: []entity.StockEntryItem{{
			ItemCode:             batch.Grade,
			Qty:                  batch.Quantity,
			DestinationWarehouse: batch.SourceWarehouse,
			CostCenter:           company.CostCenter,
			Rate:                 batch.PerUnitCost,
		}},
	}
}

// transferEntry traslado del concreto producido entre bodegas.
func (uc *UseCase) transferEntry(batch *entity.ProductionBatch, company *entity.Company, from, to string, now time.Time) *entity.StockEntry {
	return &entity.StockEntry{
		ID:          uuid.New().String(),
		CompanyID:   batch.CompanyID,
		Type:        entity.StockEntryTransfer,
		PostingDate: batch.ProductionDate,
		PostingTime: batch.PostingTime,
		BatchID:     batch.ID,
		CreatedAt:   now,
		Items: []entity.StockEntryItem{{
			ItemCode:             batch.Grade,
			Qty:                  batch.Quantity,
			SourceWarehouse:      from,
			DestinationWarehouse: to,
			CostCenter:           company.CostCenter,
			Rate:                 batch.PerUnitCost,
		}},
	}
}

// mixingChargeEntries par contable balanceado de cargos de mezclado:
// débito a CWIP, crédito a gastos de mezclado.
func (uc *UseCase) mixingChargeEntries(batch *entity.ProductionBatch, company *entity.Company) ([]entity.LedgerEntry, error) {
	names, err := uc.provisioner.EnsureAccounts(batch.CompanyID)
	if err != nil {
		return nil, err
	}
	builder := &entity.LedgerBuilder{
		CompanyID:   batch.CompanyID,
		PostingDate: batch.ProductionDate,
		VoucherType: VoucherType,
		VoucherNo:   batch.ID,
		CostCenter:  company.CostCenter,
	}
	remarks := fmt.Sprintf("Cargos de mezclado del lote %s", batch.ID)
	return []entity.LedgerEntry{
		builder.Debit(names.CWIP, names.MixingExpense, batch.TotalMixingCost, remarks),
		builder.Credit(names.MixingExpense, names.CWIP, batch.TotalMixingCost, remarks),
	}, nil
}
