package entity

import "time"

// Tipos de cuenta usados por el aprovisionador.
const (
	AccountTypeCWIP          = "Capital Work in Progress"
	AccountTypeDirectExpense = "Direct Expenses"

	RootTypeAsset   = "Asset"
	RootTypeExpense = "Expense"
)

// Account es una cuenta del plan contable. El nombre completo
// ("Capital Work in Progress - MKB") actúa como clave natural.
type Account struct {
	Name          string // nombre completo con sufijo de empresa
	CompanyID     string
	AccountName   string // nombre sin sufijo
	ParentAccount string
	AccountType   string
	RootType      string
	IsGroup       bool
	CreatedAt     time.Time
}
