package rates_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psunilk13/rmc-doctypes/internal/application/dto"
	"github.com/psunilk13/rmc-doctypes/internal/application/rates"
	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
)

// fakeRateRepo implementación en memoria del puerto de tarifas.
type fakeRateRepo struct {
	items map[string]*entity.RateEntry
}

func newFakeRateRepo() *fakeRateRepo {
	return &fakeRateRepo{items: make(map[string]*entity.RateEntry)}
}

func (f *fakeRateRepo) Create(rate *entity.RateEntry) error {
	cp := *rate
	f.items[rate.ID] = &cp
	return nil
}

func (f *fakeRateRepo) Update(rate *entity.RateEntry) error {
	if _, ok := f.items[rate.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *rate
	f.items[rate.ID] = &cp
	return nil
}

func (f *fakeRateRepo) GetByID(id string) (*entity.RateEntry, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRateRepo) ListEnabled(grade, warehouse, excludeID string) ([]*entity.RateEntry, error) {
	var out []*entity.RateEntry
	for _, r := range f.items {
		if r.Grade == grade && r.Warehouse == warehouse && !r.Disabled && r.ID != excludeID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRateRepo) ListApplicable(grade, warehouse string, date time.Time) ([]*entity.RateEntry, error) {
	var out []*entity.RateEntry
	for _, r := range f.items {
		if r.Grade == grade && r.Warehouse == warehouse && !r.Disabled && r.Contains(date) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRateRepo) List(grade, warehouse string) ([]*entity.RateEntry, error) {
	var out []*entity.RateEntry
	for _, r := range f.items {
		if (grade == "" || r.Grade == grade) && (warehouse == "" || r.Warehouse == warehouse) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func saveReq(grade, warehouse, rate, from, to string) dto.SaveRateRequest {
	return dto.SaveRateRequest{
		Grade:     grade,
		Warehouse: warehouse,
		Rate:      decimal.RequireFromString(rate),
		FromDate:  from,
		ToDate:    to,
	}
}

func TestCreate_RangoInvertido(t *testing.T) {
	uc := rates.NewUseCase(newFakeRateRepo())

	_, err := uc.Create(saveReq("M25", "Planta Norte", "5000", "2024-02-01", "2024-01-01"))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestCreate_TarifaNegativa(t *testing.T) {
	uc := rates.NewUseCase(newFakeRateRepo())

	_, err := uc.Create(saveReq("M25", "Planta Norte", "-10", "2024-01-01", "2024-01-31"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_DiaUnico(t *testing.T) {
	uc := rates.NewUseCase(newFakeRateRepo())

	// from == to es un rango válido de un día
	r, err := uc.Create(saveReq("M25", "Planta Norte", "5000", "2024-01-15", "2024-01-15"))
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
}

func TestCreate_RechazaSolape(t *testing.T) {
	repo := newFakeRateRepo()
	uc := rates.NewUseCase(repo)

	_, err := uc.Create(saveReq("M25", "Planta Norte", "5000", "2024-01-01", "2024-01-31"))
	require.NoError(t, err)

	cases := []struct{ name, from, to string }{
		{"solape parcial al final", "2024-01-20", "2024-02-20"},
		{"solape parcial al inicio", "2023-12-20", "2024-01-05"},
		{"contenido", "2024-01-10", "2024-01-20"},
		{"contenedor", "2023-12-01", "2024-02-28"},
		{"extremos que se tocan", "2024-01-31", "2024-02-28"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(saveReq("M25", "Planta Norte", "6000", tc.from, tc.to))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrRateOverlap)

			var oerr *domain.RateOverlapError
			require.True(t, errors.As(err, &oerr))
			assert.Equal(t, "M25", oerr.Grade)
			assert.Equal(t, "Planta Norte", oerr.Warehouse)
		})
	}
}

func TestCreate_SinSolapeEntreGradosNiPlantas(t *testing.T) {
	uc := rates.NewUseCase(newFakeRateRepo())

	_, err := uc.Create(saveReq("M25", "Planta Norte", "5000", "2024-01-01", "2024-01-31"))
	require.NoError(t, err)

	// Mismo rango, otro grado
	_, err = uc.Create(saveReq("M30", "Planta Norte", "5500", "2024-01-01", "2024-01-31"))
	assert.NoError(t, err)

	// Mismo rango, otra planta
	_, err = uc.Create(saveReq("M25", "Planta Sur", "5200", "2024-01-01", "2024-01-31"))
	assert.NoError(t, err)

	// Rango contiguo sin tocar extremos
	_, err = uc.Create(saveReq("M25", "Planta Norte", "6000", "2024-02-01", "2024-02-29"))
	assert.NoError(t, err)
}

func TestCreate_DeshabilitadaNoCuentaParaSolape(t *testing.T) {
	repo := newFakeRateRepo()
	uc := rates.NewUseCase(repo)

	in := saveReq("M25", "Planta Norte", "5000", "2024-01-01", "2024-01-31")
	in.Disabled = true
	_, err := uc.Create(in)
	require.NoError(t, err)

	// El mismo rango habilitado pasa porque la existente está deshabilitada
	_, err = uc.Create(saveReq("M25", "Planta Norte", "6000", "2024-01-01", "2024-01-31"))
	assert.NoError(t, err)
}

func TestUpdate_ExcluyeLaPropiaTarifa(t *testing.T) {
	repo := newFakeRateRepo()
	uc := rates.NewUseCase(repo)

	r, err := uc.Create(saveReq("M25", "Planta Norte", "5000", "2024-01-01", "2024-01-31"))
	require.NoError(t, err)

	// Editar la misma tarifa dentro de su propio rango no es solape
	upd, err := uc.Update(r.ID, saveReq("M25", "Planta Norte", "5500", "2024-01-05", "2024-01-25"))
	require.NoError(t, err)
	assert.True(t, upd.Rate.Equal(decimal.RequireFromString("5500")))
}

func TestUpdate_NoExiste(t *testing.T) {
	uc := rates.NewUseCase(newFakeRateRepo())

	_, err := uc.Update("inexistente", saveReq("M25", "Planta Norte", "5000", "2024-01-01", "2024-01-31"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta puntual: vigente, fuera de rango y ambigua
// ──────────────────────────────────────────────────────────────────────────────

func TestGetRate_Vigente(t *testing.T) {
	repo := newFakeRateRepo()
	uc := rates.NewUseCase(repo)

	_, err := uc.Create(saveReq("M25", "Planta Norte", "5000", "2024-01-01", "2024-01-31"))
	require.NoError(t, err)

	rate, err := uc.GetRate("M25", "Planta Norte", mustDate("2024-01-15"))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("5000")))

	// Extremos inclusivos
	rate, err = uc.GetRate("M25", "Planta Norte", mustDate("2024-01-31"))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("5000")))
}

func TestGetRate_FueraDeRango(t *testing.T) {
	repo := newFakeRateRepo()
	uc := rates.NewUseCase(repo)

	_, err := uc.Create(saveReq("M25", "Planta Norte", "5000", "2024-01-01", "2024-01-31"))
	require.NoError(t, err)

	_, err = uc.GetRate("M25", "Planta Norte", mustDate("2024-02-01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRateNotFound)
	// El mensaje identifica grado, planta y fecha
	assert.Contains(t, err.Error(), "M25")
	assert.Contains(t, err.Error(), "Planta Norte")
	assert.Contains(t, err.Error(), "2024-02-01")
}

func TestGetRate_Ambigua(t *testing.T) {
	// Dos tarifas solapadas insertadas directo al repo, simulando datos
	// heredados previos a la validación de solape
	repo := newFakeRateRepo()
	repo.items["a"] = &entity.RateEntry{
		ID: "a", Grade: "M25", Warehouse: "Planta Norte",
		Rate: decimal.RequireFromString("5000"), FromDate: mustDate("2024-01-01"), ToDate: mustDate("2024-01-31"),
	}
	repo.items["b"] = &entity.RateEntry{
		ID: "b", Grade: "M25", Warehouse: "Planta Norte",
		Rate: decimal.RequireFromString("6000"), FromDate: mustDate("2024-01-15"), ToDate: mustDate("2024-02-15"),
	}
	uc := rates.NewUseCase(repo)

	_, err := uc.GetRate("M25", "Planta Norte", mustDate("2024-01-20"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmbiguousRate, "nunca elegir una tarifa en silencio")
}

func mustDate(s string) time.Time {
	d, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}
