// Package rates administra la tabla de tarifas de mezclado: altas y
// ediciones con validación de solape, y consulta puntual por fecha.
package rates

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/psunilk13/rmc-doctypes/internal/application/dto"
	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
)

// UseCase casos de uso de tarifas de mezclado.
type UseCase struct {
	rateRepo repository.RateRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(rateRepo repository.RateRepository) *UseCase {
	return &UseCase{rateRepo: rateRepo}
}

// Create valida orden de fechas y solape, y persiste la tarifa.
func (uc *UseCase) Create(in dto.SaveRateRequest) (*entity.RateEntry, error) {
	rate, err := uc.buildEntry("", in)
	if err != nil {
		return nil, err
	}
	if err := uc.validateNoOverlap(rate, ""); err != nil {
		return nil, err
	}
	rate.ID = uuid.New().String()
	now := time.Now()
	rate.CreatedAt = now
	rate.UpdatedAt = now
	if err := uc.rateRepo.Create(rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// Update re-valida fechas y solape excluyendo la propia tarifa, y persiste.
func (uc *UseCase) Update(id string, in dto.SaveRateRequest) (*entity.RateEntry, error) {
	existing, err := uc.rateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	rate, err := uc.buildEntry(id, in)
	if err != nil {
		return nil, err
	}
	if err := uc.validateNoOverlap(rate, id); err != nil {
		return nil, err
	}
	rate.CreatedAt = existing.CreatedAt
	rate.UpdatedAt = time.Now()
	if err := uc.rateRepo.Update(rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// GetRate devuelve la tarifa vigente para (grado, planta) en la fecha dada.
// Sin coincidencias: ErrRateNotFound. Más de una coincidencia viola el
// invariante de no-solape y se reporta como ErrAmbiguousRate en lugar de
// elegir una en silencio.
func (uc *UseCase) GetRate(grade, warehouse string, date time.Time) (decimal.Decimal, error) {
	matches, err := uc.rateRepo.ListApplicable(grade, warehouse, date)
	if err != nil {
		return decimal.Zero, err
	}
	switch len(matches) {
	case 0:
		return decimal.Zero, fmt.Errorf("%w: %s en planta %s para la fecha %s",
			domain.ErrRateNotFound, grade, warehouse, date.Format(dto.DateLayout))
	case 1:
		return matches[0].Rate, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %s en planta %s para la fecha %s",
			domain.ErrAmbiguousRate, grade, warehouse, date.Format(dto.DateLayout))
	}
}

// List devuelve las tarifas de un (grado, planta), habilitadas o no.
func (uc *UseCase) List(grade, warehouse string) ([]*entity.RateEntry, error) {
	return uc.rateRepo.List(grade, warehouse)
}

// buildEntry parsea el request y valida el orden de fechas.
func (uc *UseCase) buildEntry(id string, in dto.SaveRateRequest) (*entity.RateEntry, error) {
	if in.Grade == "" || in.Warehouse == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Rate.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la tarifa no puede ser negativa", domain.ErrValidation)
	}
	from, err := time.Parse(dto.DateLayout, in.FromDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inicial %q", domain.ErrInvalidInput, in.FromDate)
	}
	to, err := time.Parse(dto.DateLayout, in.ToDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha final %q", domain.ErrInvalidInput, in.ToDate)
	}
	if to.Before(from) {
		return nil, domain.ErrInvalidDateRange
	}
	return &entity.RateEntry{
		ID:        id,
		Grade:     in.Grade,
		Warehouse: in.Warehouse,
		Rate:      in.Rate,
		FromDate:  from,
		ToDate:    to,
		Disabled:  in.Disabled,
	}, nil
}

// validateNoOverlap rechaza la tarifa candidata si su rango intersecta el de
// otra tarifa habilitada del mismo (grado, planta), con extremos inclusivos.
// Las tarifas deshabilitadas no cuentan. Chequeo lectura-luego-escritura: la
// constraint de exclusión en la tabla es la garantía real bajo concurrencia.
func (uc *UseCase) validateNoOverlap(candidate *entity.RateEntry, excludeID string) error {
	if candidate.Disabled {
		return nil
	}
	existing, err := uc.rateRepo.ListEnabled(candidate.Grade, candidate.Warehouse, excludeID)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.Overlaps(candidate.FromDate, candidate.ToDate) {
			return &domain.RateOverlapError{
				Grade:     candidate.Grade,
				Warehouse: candidate.Warehouse,
				From:      other.FromDate,
				To:        other.ToDate,
			}
		}
	}
	return nil
}
