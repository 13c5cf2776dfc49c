package production_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psunilk13/rmc-doctypes/internal/application/accounts"
	"github.com/psunilk13/rmc-doctypes/internal/application/dto"
	"github.com/psunilk13/rmc-doctypes/internal/application/production"
	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
	"github.com/psunilk13/rmc-doctypes/internal/domain/workflow"
	"github.com/psunilk13/rmc-doctypes/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: el txRunner toma una foto del
// estado antes de ejecutar y la restaura si la función falla, igual que un
// rollback real.
// ──────────────────────────────────────────────────────────────────────────────

type store struct {
	batches map[string]*entity.ProductionBatch
	stock   []*entity.StockEntry
	ledger  []entity.LedgerEntry

	failStockCreate  bool
	failLedgerCreate bool
}

func newStore() *store {
	return &store{batches: make(map[string]*entity.ProductionBatch)}
}

func (s *store) snapshot() *store {
	cp := &store{
		batches: make(map[string]*entity.ProductionBatch, len(s.batches)),
		stock:   append([]*entity.StockEntry(nil), s.stock...),
		ledger:  append([]entity.LedgerEntry(nil), s.ledger...),
	}
	for id, b := range s.batches {
		bc := *b
		cp.batches[id] = &bc
	}
	return cp
}

func (s *store) restore(snap *store) {
	s.batches = snap.batches
	s.stock = snap.stock
	s.ledger = snap.ledger
}

type fakeBatchRepo struct{ s *store }

func (f *fakeBatchRepo) Create(b *entity.ProductionBatch) error {
	cp := *b
	f.s.batches[b.ID] = &cp
	return nil
}

func (f *fakeBatchRepo) GetByID(id string) (*entity.ProductionBatch, error) {
	b, ok := f.s.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBatchRepo) Update(b *entity.ProductionBatch) error {
	if _, ok := f.s.batches[b.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *b
	f.s.batches[b.ID] = &cp
	return nil
}

func (f *fakeBatchRepo) SetState(id string, state workflow.Status, changedAt time.Time) error {
	b, ok := f.s.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.WorkflowState = state
	b.StatusChangedAt = &changedAt
	return nil
}

func (f *fakeBatchRepo) MarkSubmitted(id string, at time.Time) error {
	b, ok := f.s.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Submitted = true
	b.SubmittedAt = &at
	return nil
}

func (f *fakeBatchRepo) ListByCompany(companyID string) ([]*entity.ProductionBatch, error) {
	var out []*entity.ProductionBatch
	for _, b := range f.s.batches {
		if b.CompanyID == companyID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeStockRepo struct{ s *store }

func (f *fakeStockRepo) Create(entry *entity.StockEntry) error {
	if f.s.failStockCreate {
		return errors.New("inventario indisponible")
	}
	f.s.stock = append(f.s.stock, entry)
	return nil
}

func (f *fakeStockRepo) ListByBatch(batchID string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range f.s.stock {
		if e.BatchID == batchID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeLedgerRepo struct{ s *store }

func (f *fakeLedgerRepo) CreateEntries(entries []entity.LedgerEntry) error {
	if f.s.failLedgerCreate {
		return errors.New("libro mayor indisponible")
	}
	f.s.ledger = append(f.s.ledger, entries...)
	return nil
}

func (f *fakeLedgerRepo) ListByVoucher(voucherType, voucherNo string) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for i := range f.s.ledger {
		if f.s.ledger[i].VoucherType == voucherType && f.s.ledger[i].VoucherNo == voucherNo {
			out = append(out, &f.s.ledger[i])
		}
	}
	return out, nil
}

type fakeTxRunner struct{ s *store }

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.BatchRepository,
	repository.StockEntryRepository,
	repository.LedgerRepository,
) error) error {
	snap := f.s.snapshot()
	if err := fn(&fakeBatchRepo{f.s}, &fakeStockRepo{f.s}, &fakeLedgerRepo{f.s}); err != nil {
		f.s.restore(snap)
		return err
	}
	return nil
}

type fakeCompanyRepo struct{ companies map[string]*entity.Company }

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanyRepo) SetCWIPAccount(companyID, accountName string) error { return nil }

type fakeBOMRepo struct{ boms map[string]*entity.BOM }

func (f *fakeBOMRepo) GetByID(id string) (*entity.BOM, error) {
	b, ok := f.boms[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

type fakeRateSource struct {
	rate decimal.Decimal
	err  error
}

func (f *fakeRateSource) GetRate(grade, warehouse string, date time.Time) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return f.rate, nil
}

type fakeProvisioner struct {
	calls int
	err   error
}

func (f *fakeProvisioner) EnsureAccounts(companyID string) (*accounts.Names, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &accounts.Names{
		CWIP:          "Capital Work in Progress - CDN",
		MixingExpense: "RMC Mixing Expenses - CDN",
	}, nil
}

type fixture struct {
	s           *store
	uc          *production.UseCase
	rates       *fakeRateSource
	provisioner *fakeProvisioner
	company     *fakeCompanyRepo
}

func newFixture() *fixture {
	s := newStore()
	rates := &fakeRateSource{rate: dec("50")}
	provisioner := &fakeProvisioner{}
	company := &fakeCompanyRepo{companies: map[string]*entity.Company{
		"co-1": {ID: "co-1", Name: "Concretos del Norte", Abbr: "CDN", CostCenter: "Principal - CDN"},
	}}
	boms := &fakeBOMRepo{boms: map[string]*entity.BOM{
		"bom-m25": {
			ID: "bom-m25", Grade: "M25", Quantity: dec("10"),
			Items: []entity.BOMItem{
				{ItemCode: "CEM-01", ItemName: "Cemento", UOM: "Kg", Quantity: dec("3500"), Rate: dec("0.5")},
				{ItemCode: "ARE-01", ItemName: "Arena", UOM: "Kg", Quantity: dec("7000"), Rate: dec("0.1")},
			},
		},
	}}
	uc := production.NewUseCase(
		&fakeTxRunner{s}, &fakeBatchRepo{s}, boms, company, rates, provisioner,
		production.Config{TransitWarehouse: "RMC Transit"},
		logger.Nop(),
	)
	return &fixture{s: s, uc: uc, rates: rates, provisioner: provisioner, company: company}
}

func createReq() dto.CreateBatchRequest {
	return dto.CreateBatchRequest{
		BOMID:                "bom-m25",
		Grade:                "M25",
		SourceWarehouse:      "Planta Norte",
		DestinationWarehouse: "Obra Central",
		ProductionDate:       "2024-01-15",
		PostingTime:          "08:30:00",
		Quantity:             dec("10"),
		ProductionCost:       dec("200"),
		RawMaterials: []dto.RawMaterialLineInput{
			{ItemCode: "CEM-01", ItemName: "Cemento", UOM: "Kg", EstimatedQty: dec("3500"), ActualQty: dec("3500"), Rate: dec("0.2")},
			{ItemCode: "ARE-01", ItemName: "Arena", UOM: "Kg", EstimatedQty: dec("7000"), ActualQty: dec("7500"), Rate: dec("0.04")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y validación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBatch_CalculaDerivados(t *testing.T) {
	fx := newFixture()

	b, err := fx.uc.CreateBatch("co-1", createReq())
	require.NoError(t, err)

	// 3500*0.2 + 7500*0.04 = 700 + 300 = 1000
	assert.True(t, b.TotalRawMaterialCost.Equal(dec("1000")), "raw = %s", b.TotalRawMaterialCost)
	assert.True(t, b.MixingRate.Equal(dec("50")))
	assert.True(t, b.TotalMixingCost.Equal(dec("500")))
	assert.True(t, b.TotalCost.Equal(dec("1700")))
	assert.True(t, b.PerUnitCost.Equal(dec("170")))
	assert.Equal(t, workflow.StatusDraft, b.WorkflowState)
	assert.False(t, b.Submitted)
}

func TestCreateBatch_Invalidos(t *testing.T) {
	fx := newFixture()

	in := createReq()
	in.ProductionDate = "15/01/2024"
	_, err := fx.uc.CreateBatch("co-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = createReq()
	in.Grade = ""
	_, err = fx.uc.CreateBatch("co-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = createReq()
	in.RawMaterials = nil
	_, err = fx.uc.CreateBatch("co-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	in = createReq()
	in.RawMaterials[0].ActualQty = decimal.Zero
	_, err = fx.uc.CreateBatch("co-1", in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Cemento", "el mensaje nombra el material ofensor")
}

func TestValidate_SinTarifaFallaExplicito(t *testing.T) {
	fx := newFixture()
	fx.rates.err = domain.ErrRateNotFound

	_, err := fx.uc.CreateBatch("co-1", createReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRateNotFound, "nunca degradar a tarifa cero en silencio")
}

func TestValidate_ExentoNoConsultaTarifa(t *testing.T) {
	fx := newFixture()
	fx.rates.err = domain.ErrRateNotFound

	in := createReq()
	in.MixingExempt = true
	b, err := fx.uc.CreateBatch("co-1", in)
	require.NoError(t, err)
	assert.True(t, b.MixingRate.IsZero())
	assert.True(t, b.TotalMixingCost.IsZero())
	// Sin costo de mezclado no hay cuentas que aprovisionar
	assert.Equal(t, 0, fx.provisioner.calls)
}

func TestValidate_SinCentroDeCosto(t *testing.T) {
	fx := newFixture()
	fx.company.companies["co-1"].CostCenter = ""

	_, err := fx.uc.CreateBatch("co-1", createReq())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingCostCenter)
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirmación: estado, movimientos y asientos en una sola transacción
// ──────────────────────────────────────────────────────────────────────────────

func submitBatch(t *testing.T, fx *fixture) *entity.ProductionBatch {
	t.Helper()
	b, err := fx.uc.CreateBatch("co-1", createReq())
	require.NoError(t, err)
	out, err := fx.uc.Submit(context.Background(), b.ID)
	require.NoError(t, err)
	return out
}

func TestSubmit_EfectosCompletos(t *testing.T) {
	fx := newFixture()
	b := submitBatch(t, fx)

	assert.True(t, b.Submitted)
	assert.Equal(t, workflow.StatusProduced, b.WorkflowState)
	require.NotNil(t, b.SubmittedAt)

	persisted := fx.s.batches[b.ID]
	assert.True(t, persisted.Submitted)
	assert.Equal(t, workflow.StatusProduced, persisted.WorkflowState)

	// Dos movimientos: consumo y alta del producto terminado
	require.Len(t, fx.s.stock, 2)
	issue, receipt := fx.s.stock[0], fx.s.stock[1]

	assert.Equal(t, entity.StockEntryIssue, issue.Type)
	assert.Equal(t, b.ID, issue.BatchID)
	require.Len(t, issue.Items, 2)
	for _, item := range issue.Items {
		assert.Equal(t, "Planta Norte", item.SourceWarehouse)
		assert.Empty(t, item.DestinationWarehouse)
		assert.Equal(t, "Principal - CDN", item.CostCenter)
	}

	assert.Equal(t, entity.StockEntryReceipt, receipt.Type)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "M25", receipt.Items[0].ItemCode)
	assert.True(t, receipt.Items[0].Qty.Equal(dec("10")))
	assert.Equal(t, "Planta Norte", receipt.Items[0].DestinationWarehouse)
	assert.True(t, receipt.Items[0].Rate.Equal(b.PerUnitCost), "el producto entra valuado al costo unitario")

	// Par contable balanceado de cargos de mezclado
	require.Len(t, fx.s.ledger, 2)
	debit, credit := fx.s.ledger[0], fx.s.ledger[1]
	assert.Equal(t, "Capital Work in Progress - CDN", debit.Account)
	assert.Equal(t, "RMC Mixing Expenses - CDN", credit.Account)
	assert.True(t, debit.Debit.Equal(dec("500")))
	assert.True(t, credit.Credit.Equal(dec("500")))
	assert.True(t, debit.Credit.IsZero())
	assert.True(t, credit.Debit.IsZero())
	for _, e := range fx.s.ledger {
		assert.Equal(t, production.VoucherType, e.VoucherType)
		assert.Equal(t, b.ID, e.VoucherNo)
		assert.Equal(t, "Principal - CDN", e.CostCenter)
	}
}

func TestSubmit_ExentoSinAsientos(t *testing.T) {
	fx := newFixture()
	in := createReq()
	in.MixingExempt = true
	b, err := fx.uc.CreateBatch("co-1", in)
	require.NoError(t, err)

	_, err = fx.uc.Submit(context.Background(), b.ID)
	require.NoError(t, err)

	assert.Len(t, fx.s.stock, 2, "los movimientos de inventario sí ocurren")
	assert.Empty(t, fx.s.ledger, "sin costo de mezclado no hay asientos")
}

func TestSubmit_YaConfirmado(t *testing.T) {
	fx := newFixture()
	b := submitBatch(t, fx)

	_, err := fx.uc.Submit(context.Background(), b.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSubmit_NoExiste(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.Submit(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_RollbackSiFallaUnMovimiento(t *testing.T) {
	fx := newFixture()
	b, err := fx.uc.CreateBatch("co-1", createReq())
	require.NoError(t, err)

	fx.s.failStockCreate = true
	_, err = fx.uc.Submit(context.Background(), b.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)

	// Nada quedó a medias: ni estado, ni movimientos, ni asientos
	persisted := fx.s.batches[b.ID]
	assert.False(t, persisted.Submitted)
	assert.Equal(t, workflow.StatusDraft, persisted.WorkflowState)
	assert.Empty(t, fx.s.stock)
	assert.Empty(t, fx.s.ledger)
}

func TestSubmit_RollbackSiFallaElAsiento(t *testing.T) {
	fx := newFixture()
	b, err := fx.uc.CreateBatch("co-1", createReq())
	require.NoError(t, err)

	fx.s.failLedgerCreate = true
	_, err = fx.uc.Submit(context.Background(), b.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)

	persisted := fx.s.batches[b.ID]
	assert.False(t, persisted.Submitted)
	assert.Empty(t, fx.s.stock, "los movimientos previos del mismo comprobante también se revierten")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambios de estado de entrega
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_CicloCompleto(t *testing.T) {
	fx := newFixture()
	b := submitBatch(t, fx)

	err := fx.uc.UpdateStatus(context.Background(), b.ID, workflow.StatusInTransit)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusInTransit, fx.s.batches[b.ID].WorkflowState)

	// Traslado planta -> tránsito
	require.Len(t, fx.s.stock, 3)
	transfer := fx.s.stock[2]
	assert.Equal(t, entity.StockEntryTransfer, transfer.Type)
	require.Len(t, transfer.Items, 1)
	assert.Equal(t, "Planta Norte", transfer.Items[0].SourceWarehouse)
	assert.Equal(t, "RMC Transit", transfer.Items[0].DestinationWarehouse)

	err = fx.uc.UpdateStatus(context.Background(), b.ID, workflow.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusDelivered, fx.s.batches[b.ID].WorkflowState)

	// Traslado tránsito -> obra
	require.Len(t, fx.s.stock, 4)
	transfer = fx.s.stock[3]
	assert.Equal(t, "RMC Transit", transfer.Items[0].SourceWarehouse)
	assert.Equal(t, "Obra Central", transfer.Items[0].DestinationWarehouse)
}

func TestUpdateStatus_TransicionInvalida(t *testing.T) {
	fx := newFixture()
	b := submitBatch(t, fx)

	// Saltar directo a Delivered no está permitido
	err := fx.uc.UpdateStatus(context.Background(), b.ID, workflow.StatusDelivered)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, workflow.StatusProduced, fx.s.batches[b.ID].WorkflowState)
	assert.Len(t, fx.s.stock, 2, "sin transición no hay traslado")
}

func TestUpdateStatus_NoConfirmado(t *testing.T) {
	fx := newFixture()
	b, err := fx.uc.CreateBatch("co-1", createReq())
	require.NoError(t, err)

	err = fx.uc.UpdateStatus(context.Background(), b.ID, workflow.StatusInTransit)
	assert.ErrorIs(t, err, domain.ErrNotSubmitted)
}

func TestUpdateStatus_RollbackDejaElEstadoIntacto(t *testing.T) {
	fx := newFixture()
	b := submitBatch(t, fx)

	fx.s.failStockCreate = true
	err := fx.uc.UpdateStatus(context.Background(), b.ID, workflow.StatusInTransit)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)

	assert.Equal(t, workflow.StatusProduced, fx.s.batches[b.ID].WorkflowState,
		"si el traslado no se registra, el estado tampoco cambia")
}

func TestBulkUpdateStatus_ParticionaExitosYFallos(t *testing.T) {
	fx := newFixture()
	b1 := submitBatch(t, fx)
	b2 := submitBatch(t, fx)
	draft, err := fx.uc.CreateBatch("co-1", createReq())
	require.NoError(t, err)

	result := fx.uc.BulkUpdateStatus(context.Background(),
		[]string{b1.ID, draft.ID, b2.ID}, workflow.StatusInTransit)

	assert.ElementsMatch(t, []string{b1.ID, b2.ID}, result.Succeeded)
	assert.Equal(t, []string{draft.ID}, result.Failed)

	// Los exitosos avanzaron aunque uno del grupo haya fallado
	assert.Equal(t, workflow.StatusInTransit, fx.s.batches[b1.ID].WorkflowState)
	assert.Equal(t, workflow.StatusInTransit, fx.s.batches[b2.ID].WorkflowState)
	assert.Equal(t, workflow.StatusDraft, fx.s.batches[draft.ID].WorkflowState)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas auxiliares
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusInfo(t *testing.T) {
	fx := newFixture()
	b := submitBatch(t, fx)

	info, err := fx.uc.StatusInfo(b.ID, time.Now().Add(3*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.True(t, info.Alert, "3 horas en Produced supera el umbral de 2")
	assert.InDelta(t, 3, info.Hours, 0.01)
}

func TestStatusInfo_BorradorSinHistorial(t *testing.T) {
	fx := newFixture()
	b, err := fx.uc.CreateBatch("co-1", createReq())
	require.NoError(t, err)

	info, err := fx.uc.StatusInfo(b.ID, time.Now())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestGetMixingRate_PersisteLaTarifa(t *testing.T) {
	fx := newFixture()
	b, err := fx.uc.CreateBatch("co-1", createReq())
	require.NoError(t, err)

	fx.rates.rate = dec("75")
	rate, err := fx.uc.GetMixingRate(b.ID)
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("75")))

	persisted := fx.s.batches[b.ID]
	assert.True(t, persisted.MixingRate.Equal(dec("75")))
	assert.True(t, persisted.TotalMixingCost.Equal(dec("750")), "los costos se recalculan con la nueva tarifa")
}

func TestGetMixingRate_ConfirmadoNoRecalcula(t *testing.T) {
	fx := newFixture()
	b := submitBatch(t, fx)

	// Un cambio de tarifa posterior a la confirmación no debe tocar la
	// valoración del lote ni desalinearla del asiento ya registrado.
	fx.rates.rate = dec("80")
	rate, err := fx.uc.GetMixingRate(b.ID)
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("50")), "devuelve la tarifa guardada, no la vigente")

	persisted := fx.s.batches[b.ID]
	assert.True(t, persisted.MixingRate.Equal(dec("50")))
	assert.True(t, persisted.TotalMixingCost.Equal(dec("500")))
	assert.True(t, persisted.TotalCost.Equal(dec("1700")))
	require.Len(t, fx.s.ledger, 2)
	assert.True(t, fx.s.ledger[0].Debit.Equal(persisted.TotalMixingCost), "el débito sigue igual al costo de mezclado")
}

func TestGetMixingRate_Exento(t *testing.T) {
	fx := newFixture()
	in := createReq()
	in.MixingExempt = true
	b, err := fx.uc.CreateBatch("co-1", in)
	require.NoError(t, err)

	rate, err := fx.uc.GetMixingRate(b.ID)
	require.NoError(t, err)
	assert.True(t, rate.IsZero())
}

func TestLoadBOMMaterials_EscalaPorFactor(t *testing.T) {
	fx := newFixture()
	in := createReq()
	in.Quantity = dec("25") // BOM de referencia: 10 -> factor 2.5
	b, err := fx.uc.CreateBatch("co-1", in)
	require.NoError(t, err)

	out, err := fx.uc.LoadBOMMaterials(b.ID)
	require.NoError(t, err)
	require.Len(t, out.RawMaterials, 2)

	cemento := out.RawMaterials[0]
	assert.Equal(t, "CEM-01", cemento.ItemCode)
	assert.True(t, cemento.EstimatedQty.Equal(dec("8750")), "3500 x 2.5")
	assert.True(t, cemento.ActualQty.Equal(cemento.EstimatedQty), "el consumo real arranca igual al estimado")
	assert.True(t, cemento.Variance.IsZero())

	arena := out.RawMaterials[1]
	assert.True(t, arena.EstimatedQty.Equal(dec("17500")), "7000 x 2.5")

	// Las líneas manuales previas fueron reemplazadas y el costo recalculado:
	// 8750*0.5 + 17500*0.1 = 4375 + 1750 = 6125
	assert.True(t, out.TotalRawMaterialCost.Equal(dec("6125")))
}

func TestLoadBOMMaterials_Guardas(t *testing.T) {
	fx := newFixture()

	// Sin BOM seleccionado
	in := createReq()
	in.BOMID = ""
	b, err := fx.uc.CreateBatch("co-1", in)
	require.NoError(t, err)
	_, err = fx.uc.LoadBOMMaterials(b.ID)
	assert.ErrorIs(t, err, domain.ErrNoBOMSelected)

	// Lote ya confirmado
	submitted := submitBatch(t, fx)
	_, err = fx.uc.LoadBOMMaterials(submitted.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
