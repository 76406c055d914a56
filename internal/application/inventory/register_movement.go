package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	dominv "github.com/jhoicas/ememar-console/internal/domain/inventory"
	"github.com/jhoicas/ememar-console/pkg/money"
)

// Mensajes del surtido.
const (
	MsgInvalidAmount  = "Ingresa un monto válido"
	MsgRestockOK      = "Insumo surtido exitosamente"
	MsgRestockFailed  = "Error al surtir insumo"
	MsgInsumoNotFound = "Insumo no encontrado"
)

// Preview calcula total y stock resultante sin modificar nada. Usa el insumo vigente del servidor.
func (uc *InsumoUseCase) Preview(ctx context.Context, insumoID int64, amount decimal.Decimal) (*dto.RestockPreviewResponse, error) {
	insumo, err := uc.find(ctx, insumoID)
	if err != nil {
		return nil, err
	}
	p := dominv.PreviewRestock(insumo, amount)
	return &dto.RestockPreviewResponse{
		InsumoID:           p.InsumoID,
		Amount:             p.Amount,
		TotalAmount:        p.TotalAmount,
		TotalAmountDisplay: money.FormatCOP(p.TotalAmount),
		NewStock:           p.NewStock,
		UM:                 insumo.UM,
	}, nil
}

// Restock registra el surtido en POST /moves y re-consulta los insumos.
// El stock nuevo lo aplica el servidor; aquí nunca se suma localmente.
func (uc *InsumoUseCase) Restock(ctx context.Context, insumoID int64, in dto.RestockRequest) (*dto.RestockResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidation(domain.CodeValidation, MsgInvalidAmount)
	}
	insumo, err := uc.find(ctx, insumoID)
	if err != nil {
		return nil, err
	}
	p := dominv.PreviewRestock(insumo, in.Amount)

	restock := entity.Restock{InsumoID: insumo.ID, Amount: p.Amount, TotalAmount: p.TotalAmount}
	if err := uc.moves.Restock(ctx, restock); err != nil {
		return nil, fmt.Errorf("inventory: surtir insumo %d: %w", insumo.ID, err)
	}
	uc.log.Info().
		Int64("insumo_id", insumo.ID).
		Str("amount", p.Amount.String()).
		Str("total_amount", p.TotalAmount.String()).
		Msg("insumo surtido")

	list, degraded := uc.fetch(ctx)
	return &dto.RestockResponse{Message: MsgRestockOK, Insumos: dto.NewList(dto.FromInsumos(list), degraded)}, nil
}

// find busca el insumo en el listado remoto. Un listado degradado equivale a no encontrado.
func (uc *InsumoUseCase) find(ctx context.Context, insumoID int64) (*entity.Insumo, error) {
	if insumoID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	list, degraded := uc.fetch(ctx)
	if degraded {
		return nil, fmt.Errorf("inventory: listar insumos: %w", domain.ErrUnavailable)
	}
	for i := range list {
		if list[i].ID == insumoID {
			return &list[i], nil
		}
	}
	return nil, domain.NewValidation(domain.CodeNotFound, MsgInsumoNotFound)
}
