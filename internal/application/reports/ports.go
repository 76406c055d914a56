package reports

import (
	"context"
	"time"

	"github.com/jhoicas/ememar-console/internal/domain/entity"
)

// StatementSale venta a crédito del cliente con sus abonos.
type StatementSale struct {
	Sale     entity.CreditSale
	Payments []entity.Payment
}

// StatementData datos del estado de cuenta de un cliente.
type StatementData struct {
	Client        entity.Client
	Sales         []StatementSale
	GeneratedAt   time.Time
	DisplayOffset time.Duration // corrimiento aplicado a las fechas del servidor
}

// StatementRenderer genera el PDF del estado de cuenta.
type StatementRenderer interface {
	RenderStatement(ctx context.Context, data *StatementData) ([]byte, error)
}

// LedgerRenderer genera la hoja de cálculo de movimientos.
type LedgerRenderer interface {
	RenderLedger(ctx context.Context, movements []entity.Movement, offset time.Duration) ([]byte, error)
}
