package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
)

// ReportsUseCase estado de cuenta en PDF y libro de movimientos en XLSX.
// A diferencia de los listados, un fallo de lectura no degrada: un reporte incompleto no se entrega.
type ReportsUseCase struct {
	clientRepo repository.ClientRepository
	creditRepo repository.CreditRepository
	moveRepo   repository.MovementRepository
	statement  StatementRenderer
	ledger     LedgerRenderer
	offset     time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	clientRepo repository.ClientRepository,
	creditRepo repository.CreditRepository,
	moveRepo repository.MovementRepository,
	statement StatementRenderer,
	ledger LedgerRenderer,
	offset time.Duration,
	log zerolog.Logger,
) *ReportsUseCase {
	return &ReportsUseCase{
		clientRepo: clientRepo,
		creditRepo: creditRepo,
		moveRepo:   moveRepo,
		statement:  statement,
		ledger:     ledger,
		offset:     offset,
		now:        time.Now,
		log:        log.With().Str("usecase", "reports").Logger(),
	}
}

// StatementData reúne cliente, ventas a crédito y abonos de cada venta.
func (uc *ReportsUseCase) StatementData(ctx context.Context, clientID int64) (*StatementData, error) {
	if clientID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reports: listar clientes: %w", err)
	}
	var client *entity.Client
	for i := range clients {
		if clients[i].ID == clientID {
			client = &clients[i]
			break
		}
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	sales, err := uc.creditRepo.SalesByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("reports: ventas del cliente %d: %w", clientID, err)
	}
	data := &StatementData{
		Client:        *client,
		Sales:         make([]StatementSale, 0, len(sales)),
		GeneratedAt:   uc.now().UTC(),
		DisplayOffset: uc.offset,
	}
	for _, s := range sales {
		payments, err := uc.creditRepo.Payments(ctx, s.SaleID)
		if err != nil {
			return nil, fmt.Errorf("reports: abonos de la venta %d: %w", s.SaleID, err)
		}
		data.Sales = append(data.Sales, StatementSale{Sale: s, Payments: payments})
	}
	return data, nil
}

// Statement genera el PDF del estado de cuenta.
func (uc *ReportsUseCase) Statement(ctx context.Context, clientID int64) ([]byte, error) {
	data, err := uc.StatementData(ctx, clientID)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.statement.RenderStatement(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("reports: generar estado de cuenta: %w", err)
	}
	uc.log.Info().Int64("client_id", clientID).Int("sales", len(data.Sales)).Int("bytes", len(pdf)).Msg("estado de cuenta generado")
	return pdf, nil
}

// Ledger genera el XLSX con todos los movimientos.
func (uc *ReportsUseCase) Ledger(ctx context.Context) ([]byte, error) {
	moves, err := uc.moveRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reports: listar movimientos: %w", err)
	}
	xlsx, err := uc.ledger.RenderLedger(ctx, moves, uc.offset)
	if err != nil {
		return nil, fmt.Errorf("reports: generar libro: %w", err)
	}
	uc.log.Info().Int("movements", len(moves)).Int("bytes", len(xlsx)).Msg("libro de movimientos generado")
	return xlsx, nil
}
