package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ememar-console/internal/application/degrade"
	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	dominv "github.com/jhoicas/ememar-console/internal/domain/inventory"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
	"github.com/jhoicas/ememar-console/pkg/textsearch"
)

// Mensajes al operador.
const (
	MsgFieldsRequired = "Completa todos los campos"
	MsgAdjustOK       = "Saldo ajustado exitosamente"
	MsgAdjustFailed   = "Error al ajustar saldo"
)

// DashboardUseCase resumen de caja, movimientos y ajuste de saldo.
type DashboardUseCase struct {
	moveRepo   repository.MovementRepository
	insumoRepo repository.InsumoRepository
	offset     time.Duration
	log        zerolog.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	moveRepo repository.MovementRepository,
	insumoRepo repository.InsumoRepository,
	offset time.Duration,
	log zerolog.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		moveRepo:   moveRepo,
		insumoRepo: insumoRepo,
		offset:     offset,
		log:        log.With().Str("usecase", "dashboard").Logger(),
	}
}

// Summary saldo, adeudado, movimientos recientes e insumos bajo mínimo.
// Cada lectura degrada por separado; Degraded indica que al menos una falló.
func (uc *DashboardUseCase) Summary(ctx context.Context) dto.DashboardSummaryResponse {
	var res dto.DashboardSummaryResponse

	acc, err := uc.moveRepo.Account(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Str("read", "account").Msg("lectura degradada")
		res.Degraded = true
	} else {
		res.Account = dto.FromAccount(acc)
	}

	recent, err := uc.moveRepo.Recent(ctx)
	recent, recentDegraded := degrade.List(uc.log, "recent_moves", recent, err)
	res.Recent = dto.FromMovements(recent, uc.offset)

	insumos, err := uc.insumoRepo.List(ctx)
	insumos, insumosDegraded := degrade.List(uc.log, "insumos", insumos, err)
	res.LowStock = dto.FromInsumos(dominv.LowStock(insumos))

	res.Degraded = res.Degraded || recentDegraded || insumosDegraded
	return res
}

// Movements movimientos con búsqueda por descripción. kind filtra por clasificación si no es vacío.
func (uc *DashboardUseCase) Movements(ctx context.Context, query string, kind entity.MovementKind) dto.ListResponse[dto.MovementResponse] {
	list, degraded := uc.fetch(ctx)
	out := make([]entity.Movement, 0, len(list))
	for _, m := range list {
		if kind != "" && m.Kind() != kind {
			continue
		}
		if textsearch.Contains(query, m.Description) {
			out = append(out, m)
		}
	}
	return dto.NewList(dto.FromMovements(out, uc.offset), degraded)
}

// AdjustBalance monto distinto de cero y descripción obligatorios; luego refresca movimientos.
func (uc *DashboardUseCase) AdjustBalance(ctx context.Context, in dto.AdjustBalanceRequest) (*dto.AdjustBalanceResponse, error) {
	desc := strings.TrimSpace(in.Description)
	if in.Amount.IsZero() || desc == "" {
		return nil, domain.NewValidation(domain.CodeValidation, MsgFieldsRequired)
	}
	adj := entity.BalanceAdjustment{Amount: in.Amount, Description: desc}
	if err := uc.moveRepo.AdjustBalance(ctx, adj); err != nil {
		return nil, fmt.Errorf("dashboard: ajustar saldo: %w", err)
	}
	uc.log.Info().Str("amount", in.Amount.String()).Str("description", desc).Msg("saldo ajustado")

	list, degraded := uc.fetch(ctx)
	return &dto.AdjustBalanceResponse{
		Message:   MsgAdjustOK,
		Movements: dto.NewList(dto.FromMovements(list, uc.offset), degraded),
	}, nil
}

func (uc *DashboardUseCase) fetch(ctx context.Context) ([]entity.Movement, bool) {
	list, err := uc.moveRepo.List(ctx)
	return degrade.List(uc.log, "moves", list, err)
}
