package repository

import (
	"time"

	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/workflow"
)

// BatchRepository define el puerto de persistencia de lotes de producción.
type BatchRepository interface {
	Create(batch *entity.ProductionBatch) error
	// GetByID carga el lote con sus líneas de materia prima.
	GetByID(id string) (*entity.ProductionBatch, error)
	// Update persiste cabecera y reemplaza las líneas (campos derivados incluidos).
	Update(batch *entity.ProductionBatch) error
	// SetState persiste el nuevo estado y su marca de tiempo. Solo los casos
	// de uso de producción deben invocarlo, tras pasar por workflow.Transition.
	SetState(id string, state workflow.Status, changedAt time.Time) error
	MarkSubmitted(id string, at time.Time) error
	ListByCompany(companyID string) ([]*entity.ProductionBatch, error)
}
