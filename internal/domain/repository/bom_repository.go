package repository

import "github.com/psunilk13/rmc-doctypes/internal/domain/entity"

// BOMRepository define el puerto de lectura de recetas (colaborador externo,
// solo consulta).
type BOMRepository interface {
	GetByID(id string) (*entity.BOM, error)
}
