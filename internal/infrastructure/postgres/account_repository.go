package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/psunilk13/rmc-doctypes/internal/domain"
	"github.com/psunilk13/rmc-doctypes/internal/domain/entity"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Exists verifica existencia por nombre completo.
func (r *AccountRepo) Exists(name string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("account exists: %w", err)
	}
	return exists, nil
}

// GetByName obtiene una cuenta; nil si no existe.
func (r *AccountRepo) GetByName(name string) (*entity.Account, error) {
	query := `
		SELECT name, company_id, account_name, parent_account, account_type,
		       root_type, is_group, created_at
		FROM accounts WHERE name = $1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&a.Name, &a.CompanyID, &a.AccountName, &a.ParentAccount,
		&a.AccountType, &a.RootType, &a.IsGroup, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// Create inserta la cuenta. Un nombre repetido (carrera con otro proceso)
// se reporta como ErrDuplicate para que el aprovisionador lo trate como éxito.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (name, company_id, account_name, parent_account,
		                      account_type, root_type, is_group, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		account.Name, account.CompanyID, account.AccountName,
		account.ParentAccount, account.AccountType, account.RootType,
		account.IsGroup, account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cuenta %s", domain.ErrDuplicate, account.Name)
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}
