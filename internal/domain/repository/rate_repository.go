package repository

import (
	"time"

	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
)

// RateRepository define el puerto de persistencia de tarifas de mezclado.
type RateRepository interface {
	Create(rate *entity.RateEntry) error
	Update(rate *entity.RateEntry) error
	GetByID(id string) (*entity.RateEntry, error)
	// ListEnabled devuelve las tarifas habilitadas de un (grado, planta),
	// excluyendo excludeID (vacío = no excluir). Base del chequeo de solape.
	ListEnabled(grade, warehouse, excludeID string) ([]*entity.RateEntry, error)
	// ListApplicable devuelve las tarifas habilitadas cuyo rango de vigencia
	// contiene la fecha. Más de un resultado indica datos corruptos.
	ListApplicable(grade, warehouse string, date time.Time) ([]*entity.RateEntry, error)
	List(grade, warehouse string) ([]*entity.RateEntry, error)
}
