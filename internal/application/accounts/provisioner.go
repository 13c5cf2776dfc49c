// Package accounts aprovisiona las dos cuentas contables que necesita el
// ciclo de producción: CWIP (activo) y gastos de mezclado (gasto directo).
package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
	"github.com/psunilk13/rmc-doctypes/pkg/logger"
)

// Nombres base de las cuentas; el nombre completo suma " - <abbr>".
const (
	CWIPAccountName          = "Capital Work in Progress"
	MixingExpenseAccountName = "RMC Mixing Expenses"

	assetsParentName   = "Application of Funds (Assets)"
	expensesParentName = "Direct Expenses"
)

// Provisioner asegura las cuentas requeridas de una empresa.
type Provisioner struct {
	companyRepo repository.CompanyRepository
	accountRepo repository.AccountRepository
	log         *logger.Logger
}

// NewProvisioner construye el aprovisionador.
func NewProvisioner(companyRepo repository.CompanyRepository, accountRepo repository.AccountRepository, log *logger.Logger) *Provisioner {
	return &Provisioner{companyRepo: companyRepo, accountRepo: accountRepo, log: log}
}

// Names resultado del aprovisionamiento: nombres completos de ambas cuentas.
type Names struct {
	CWIP          string
	MixingExpense string
}

// EnsureAccounts crea las cuentas hoja que falten y devuelve sus nombres.
// Idempotente de buen esfuerzo: verifica existencia inmediatamente antes de
// crear, y un duplicado por carrera con otro proceso se trata como éxito.
// Falla con ErrMissingParentAccount si el plan de cuentas estándar no está
// cargado; este módulo nunca crea estructura de primer nivel.
func (p *Provisioner) EnsureAccounts(companyID string) (*Names, error) {
	company, err := p.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if company.Abbr == "" {
		return nil, fmt.Errorf("%w: empresa %s sin abreviatura", domain.ErrValidation, company.Name)
	}

	assetsParent := fmt.Sprintf("%s - %s", assetsParentName, company.Abbr)
	expensesParent := fmt.Sprintf("%s - %s", expensesParentName, company.Abbr)
	for _, parent := range []string{assetsParent, expensesParent} {
		exists, err := p.accountRepo.Exists(parent)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingParentAccount, parent)
		}
	}

	names := &Names{
		CWIP:          fmt.Sprintf("%s - %s", CWIPAccountName, company.Abbr),
		MixingExpense: fmt.Sprintf("%s - %s", MixingExpenseAccountName, company.Abbr),
	}

	created, err := p.ensureAccount(&entity.Account{
		Name:          names.CWIP,
		CompanyID:     company.ID,
		AccountName:   CWIPAccountName,
		ParentAccount: assetsParent,
		AccountType:   entity.AccountTypeCWIP,
		RootType:      entity.RootTypeAsset,
	})
	if err != nil {
		return nil, err
	}
	if created {
		// La cuenta CWIP recién creada pasa a ser la designada de la empresa
		if err := p.companyRepo.SetCWIPAccount(company.ID, names.CWIP); err != nil {
			return nil, err
		}
		p.log.Info().Str("company", company.ID).Str("account", names.CWIP).Msg("cuenta CWIP creada")
	}

	created, err = p.ensureAccount(&entity.Account{
		Name:          names.MixingExpense,
		CompanyID:     company.ID,
		AccountName:   MixingExpenseAccountName,
		ParentAccount: expensesParent,
		AccountType:   entity.AccountTypeDirectExpense,
		RootType:      entity.RootTypeExpense,
	})
	if err != nil {
		return nil, err
	}
	if created {
		p.log.Info().Str("company", company.ID).Str("account", names.MixingExpense).Msg("cuenta de gastos de mezclado creada")
	}

	return names, nil
}

// ensureAccount crea la cuenta si no existe. Devuelve true si la creó.
func (p *Provisioner) ensureAccount(acc *entity.Account) (bool, error) {
	exists, err := p.accountRepo.Exists(acc.Name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	acc.CreatedAt = time.Now()
	if err := p.accountRepo.Create(acc); err != nil {
		// Otro proceso la creó entre el chequeo y el insert: mismo resultado
		if errors.Is(err, domain.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("crear cuenta %s: %w", acc.Name, err)
	}
	return true, nil
}
