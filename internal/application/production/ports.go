package production

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/psunilk13/rmc-doctypes/internal/application/accounts"
	"github.com/psunilk13/rmc-doctypes/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cambio de estado del lote
// y sus movimientos/asientos se confirmen o reviertan juntos: estado y
// libro mayor nunca divergen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		stockRepo repository.StockEntryRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// RateSource consulta puntual de la tarifa de mezclado vigente.
// Implementada por rates.UseCase.
type RateSource interface {
	GetRate(grade, warehouse string, date time.Time) (decimal.Decimal, error)
}

// AccountProvisioner asegura las cuentas CWIP y de gastos de mezclado.
// Implementada por accounts.Provisioner.
type AccountProvisioner interface {
	EnsureAccounts(companyID string) (*accounts.Names, error)
}

// DocketGenerator renderiza la remisión de entrega de un lote.
// Implementada por el generador PDF de infraestructura.
type DocketGenerator interface {
	Generate(data DocketData) ([]byte, error)
}
