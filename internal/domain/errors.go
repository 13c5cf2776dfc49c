package domain

import (
	"errors"
	"fmt"
	"time"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrValidation           = errors.New("validación fallida")
	ErrInvalidDateRange     = errors.New("la fecha final no puede ser anterior a la fecha inicial")
	ErrRateOverlap          = errors.New("ya existe una tarifa para el período seleccionado")
	ErrRateNotFound         = errors.New("no existe tarifa de mezclado aplicable")
	ErrAmbiguousRate        = errors.New("múltiples tarifas aplicables para la misma fecha")
	ErrNoBOMSelected        = errors.New("debe seleccionar una lista de materiales (BOM)")
	ErrNotSubmitted         = errors.New("el lote debe estar confirmado antes de cambiar de estado")
	ErrInvalidTransition    = errors.New("transición de estado inválida")
	ErrMissingAccount       = errors.New("cuentas contables requeridas sin configurar")
	ErrMissingParentAccount = errors.New("cuenta padre no encontrada")
	ErrMissingCostCenter    = errors.New("centro de costo por defecto sin configurar")
	ErrTransactionFailed    = errors.New("fallo al registrar los asientos del cambio de estado")
)

// RateOverlapError identifica la tarifa existente que colisiona con la candidata.
// errors.Is(err, ErrRateOverlap) == true.
type RateOverlapError struct {
	Grade     string
	Warehouse string
	From      time.Time
	To        time.Time
}

func (e *RateOverlapError) Error() string {
	return fmt.Sprintf(
		"ya existe una tarifa para %s en planta %s en el período %s a %s",
		e.Grade, e.Warehouse, e.From.Format("2006-01-02"), e.To.Format("2006-01-02"),
	)
}

func (e *RateOverlapError) Unwrap() error { return ErrRateOverlap }

// TransitionError reporta el par origen/destino de una transición rechazada.
// errors.Is(err, ErrInvalidTransition) == true.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("no se puede cambiar el estado de %s a %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
