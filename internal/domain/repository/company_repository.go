package repository

import "github.com/psunilk13/rmc-doctypes/internal/domain/entity"

// CompanyRepository define el puerto de lectura/ajuste de empresas.
type CompanyRepository interface {
	GetByID(id string) (*entity.Company, error)
	// SetCWIPAccount fija la cuenta CWIP por defecto de la empresa
	// (se invoca una sola vez, al aprovisionar cuentas).
	SetCWIPAccount(companyID, accountName string) error
}
