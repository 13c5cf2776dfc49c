package workflow

import (
	"fmt"
	"time"
)

// AlertThresholds horas máximas esperadas en cada estado antes de alertar
// al tablero de planta. Cero deshabilita la alerta para ese estado.
type AlertThresholds struct {
	ProducedHours  float64
	InTransitHours float64
}

// DefaultThresholds valores operativos estándar: el concreto premezclado
// fragua, un lote no debería quedarse Produced más de 2h ni In-Transit más de 4h.
func DefaultThresholds() AlertThresholds {
	return AlertThresholds{ProducedHours: 2, InTransitHours: 4}
}

// AgeInfo resultado del cálculo de antigüedad de estado.
type AgeInfo struct {
	Hours   float64
	Alert   bool
	Message string
}

// Age calcula las horas transcurridas desde el último cambio de estado y si
// corresponde alertar. Función pura; changedAt nil significa sin historial.
func Age(status Status, changedAt *time.Time, now time.Time, th AlertThresholds) *AgeInfo {
	if changedAt == nil {
		return nil
	}
	hours := now.Sub(*changedAt).Hours()

	var limit float64
	switch status {
	case StatusProduced:
		limit = th.ProducedHours
	case StatusInTransit:
		limit = th.InTransitHours
	}

	if limit > 0 && hours > limit {
		return &AgeInfo{
			Hours: hours,
			Alert: true,
			Message: fmt.Sprintf("el lote lleva %.1f horas en estado %s",
				hours, status),
		}
	}
	return &AgeInfo{
		Hours:   hours,
		Alert:   false,
		Message: fmt.Sprintf("tiempo en el estado actual: %.1f horas", hours),
	}
}
