package repository

import "github.com/psunilk13/rmc-doctypes/internal/domain/entity"

// AccountRepository define el puerto hacia el plan de cuentas. Este módulo
// solo crea dos cuentas hoja; nunca estructura de primer nivel.
type AccountRepository interface {
	Exists(name string) (bool, error)
	GetByName(name string) (*entity.Account, error)
	Create(account *entity.Account) error
}
