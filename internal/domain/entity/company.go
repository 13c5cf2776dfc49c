package entity

import "time"

// Company representa la empresa dueña de plantas y lotes de producción.
// Abbr se usa como sufijo de los nombres de cuenta contable ("... - MKB").
type Company struct {
	ID          string
	Name        string
	Abbr        string
	CostCenter  string // centro de costo por defecto para asientos
	CWIPAccount string // cuenta CWIP designada (se fija al aprovisionar cuentas)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
