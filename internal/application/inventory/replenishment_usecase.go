package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/ememar-console/internal/application/dto"
	dominv "github.com/jhoicas/ememar-console/internal/domain/inventory"
)

// LowStock devuelve los insumos en o bajo su mínimo con lo que falta para alcanzarlo.
// Orden: mayor faltante primero; empate por nombre.
func (uc *InsumoUseCase) LowStock(ctx context.Context) dto.ListResponse[dto.ReplenishmentItemResponse] {
	list, degraded := uc.fetch(ctx)
	low := dominv.LowStock(list)

	items := make([]dto.ReplenishmentItemResponse, 0, len(low))
	for i := range low {
		items = append(items, dto.ReplenishmentItemResponse{
			InsumoResponse: dto.FromInsumo(low[i]),
			Shortfall:      low[i].MinStock.Sub(low[i].Stock),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.Shortfall.Equal(b.Shortfall) {
			return a.Shortfall.GreaterThan(b.Shortfall)
		}
		return a.Name < b.Name
	})
	return dto.NewList(items, degraded)
}
