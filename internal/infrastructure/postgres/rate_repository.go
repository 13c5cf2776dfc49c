package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
)

var _ repository.RateRepository = (*RateRepo)(nil)

// RateRepo implementación de RateRepository sobre PostgreSQL. La tabla lleva
// una constraint de exclusión sobre (grade, warehouse, daterange) que es la
// garantía real de no-solape bajo escritores concurrentes; el chequeo de la
// capa de aplicación es solo el pre-chequeo amigable.
type RateRepo struct {
	q Querier
}

// NewRateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRateRepository(q Querier) *RateRepo {
	return &RateRepo{q: q}
}

const rateColumns = `id, grade, warehouse, rate, from_date, to_date, disabled, created_at, updated_at`

// Create inserta la tarifa. Una violación de la constraint de exclusión se
// reporta como solape de dominio.
func (r *RateRepo) Create(rate *entity.RateEntry) error {
	query := `
		INSERT INTO grade_rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.Grade, rate.Warehouse, rate.Rate,
		rate.FromDate, rate.ToDate, rate.Disabled, rate.CreatedAt, rate.UpdatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return overlapError(rate)
		}
		return fmt.Errorf("create rate: %w", err)
	}
	return nil
}

// Update actualiza la tarifa completa.
func (r *RateRepo) Update(rate *entity.RateEntry) error {
	query := `
		UPDATE grade_rates
		SET grade = $2, warehouse = $3, rate = $4, from_date = $5,
		    to_date = $6, disabled = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.Grade, rate.Warehouse, rate.Rate,
		rate.FromDate, rate.ToDate, rate.Disabled, rate.UpdatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return overlapError(rate)
		}
		return fmt.Errorf("update rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una tarifa; nil si no existe.
func (r *RateRepo) GetByID(id string) (*entity.RateEntry, error) {
	query := `SELECT ` + rateColumns + ` FROM grade_rates WHERE id = $1`
	rate, err := scanRate(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate: %w", err)
	}
	return rate, nil
}

// ListEnabled tarifas habilitadas de un (grado, planta) excluyendo excludeID.
func (r *RateRepo) ListEnabled(grade, warehouse, excludeID string) ([]*entity.RateEntry, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM grade_rates
		WHERE grade = $1 AND warehouse = $2 AND NOT disabled AND id <> $3
		ORDER BY from_date`
	rows, err := r.q.Query(context.Background(), query, grade, warehouse, excludeID)
	if err != nil {
		return nil, fmt.Errorf("list enabled rates: %w", err)
	}
	defer rows.Close()
	return collectRates(rows)
}

// ListApplicable tarifas habilitadas cuyo rango inclusivo contiene la fecha.
func (r *RateRepo) ListApplicable(grade, warehouse string, date time.Time) ([]*entity.RateEntry, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM grade_rates
		WHERE grade = $1 AND warehouse = $2 AND NOT disabled
		  AND from_date <= $3 AND to_date >= $3`
	rows, err := r.q.Query(context.Background(), query, grade, warehouse, date)
	if err != nil {
		return nil, fmt.Errorf("list applicable rates: %w", err)
	}
	defer rows.Close()
	return collectRates(rows)
}

// List todas las tarifas de un (grado, planta).
func (r *RateRepo) List(grade, warehouse string) ([]*entity.RateEntry, error) {
	query := `
		SELECT ` + rateColumns + `
		FROM grade_rates
		WHERE grade = $1 AND warehouse = $2
		ORDER BY from_date`
	rows, err := r.q.Query(context.Background(), query, grade, warehouse)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	defer rows.Close()
	return collectRates(rows)
}

func scanRate(row pgx.Row) (*entity.RateEntry, error) {
	var rate entity.RateEntry
	err := row.Scan(
		&rate.ID, &rate.Grade, &rate.Warehouse, &rate.Rate,
		&rate.FromDate, &rate.ToDate, &rate.Disabled, &rate.CreatedAt, &rate.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func collectRates(rows pgx.Rows) ([]*entity.RateEntry, error) {
	var rates []*entity.RateEntry
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

func overlapError(rate *entity.RateEntry) error {
	return &domain.RateOverlapError{
		Grade:     rate.Grade,
		Warehouse: rate.Warehouse,
		From:      rate.FromDate,
		To:        rate.ToDate,
	}
}
