// Package workflow define la máquina de estados de un lote de producción.
// Transition es el único camino válido para avanzar de estado; ningún otro
// código debe asignar el estado directamente.
package workflow

import (
	"fmt"

	"github.com/psunilk13/rmc-doctypes/internal/domain"
)

// Status es el estado de entrega de un lote.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusProduced  Status = "Produced"
	StatusInTransit Status = "In-Transit"
	StatusDelivered Status = "Delivered"
)

// transitions enumera los avances válidos una vez confirmado el lote.
// Draft -> Produced ocurre solo vía Submit, no por cambio de estado explícito.
var transitions = map[Status]Status{
	StatusProduced:  StatusInTransit,
	StatusInTransit: StatusDelivered,
}

// Parse valida un estado recibido por API.
func Parse(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusProduced, StatusInTransit, StatusDelivered:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, s)
}

// Transition verifica que el avance from -> to esté permitido y devuelve
// el nuevo estado. Cualquier otro par falla con TransitionError.
func Transition(from, to Status) (Status, error) {
	if next, ok := transitions[from]; ok && next == to {
		return to, nil
	}
	return "", &domain.TransitionError{From: string(from), To: string(to)}
}

// Terminal indica si el estado no admite más avances.
func (s Status) Terminal() bool {
	_, ok := transitions[s]
	return !ok && s == StatusDelivered
}
