package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ememar-console/internal/application/degrade"
	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
	"github.com/jhoicas/ememar-console/pkg/textsearch"
)

// Mensajes al operador.
const (
	MsgFieldsRequired = "Completa todos los campos"
	MsgInsumoCreated  = "Insumo creado exitosamente"
	MsgInsumoUpdated  = "Insumo actualizado exitosamente"
	MsgInsumoDeleted  = "Insumo eliminado exitosamente"
	MsgSaveFailed     = "Error al guardar insumo"
	MsgDeleteFailed   = "Error al eliminar insumo"
)

// InsumoUseCase CRUD y surtido de insumos contra la API remota.
type InsumoUseCase struct {
	insumoRepo repository.InsumoRepository
	moves      repository.MovementRepository
	log        zerolog.Logger
}

// NewInsumoUseCase construye el caso de uso.
func NewInsumoUseCase(
	insumoRepo repository.InsumoRepository,
	moves repository.MovementRepository,
	log zerolog.Logger,
) *InsumoUseCase {
	return &InsumoUseCase{
		insumoRepo: insumoRepo,
		moves:      moves,
		log:        log.With().Str("usecase", "insumos").Logger(),
	}
}

// List insumos filtrados por nombre o unidad (sin tildes ni mayúsculas).
func (uc *InsumoUseCase) List(ctx context.Context, query string) dto.ListResponse[dto.InsumoResponse] {
	list, degraded := uc.fetch(ctx)
	out := make([]entity.Insumo, 0, len(list))
	for _, i := range list {
		if textsearch.Contains(query, i.Name, i.UM) {
			out = append(out, i)
		}
	}
	return dto.NewList(dto.FromInsumos(out), degraded)
}

// Create valida y crea un insumo; devuelve el listado re-consultado.
func (uc *InsumoUseCase) Create(ctx context.Context, in dto.InsumoRequest) (*dto.InsumoMutationResponse, error) {
	insumo, err := toInsumo(in)
	if err != nil {
		return nil, err
	}
	if err := uc.insumoRepo.Create(ctx, insumo); err != nil {
		return nil, fmt.Errorf("inventory: crear insumo: %w", err)
	}
	uc.log.Info().Int64("insumo_id", insumo.ID).Str("name", insumo.Name).Msg("insumo creado")
	return uc.mutated(ctx, MsgInsumoCreated), nil
}

// Update valida y reemplaza un insumo.
func (uc *InsumoUseCase) Update(ctx context.Context, id int64, in dto.InsumoRequest) (*dto.InsumoMutationResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	insumo, err := toInsumo(in)
	if err != nil {
		return nil, err
	}
	insumo.ID = id
	if err := uc.insumoRepo.Update(ctx, insumo); err != nil {
		return nil, fmt.Errorf("inventory: actualizar insumo %d: %w", id, err)
	}
	return uc.mutated(ctx, MsgInsumoUpdated), nil
}

// Delete elimina el insumo; el listado devuelto viene del servidor tras resolver el DELETE.
func (uc *InsumoUseCase) Delete(ctx context.Context, id int64) (*dto.InsumoMutationResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.insumoRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("inventory: eliminar insumo %d: %w", id, err)
	}
	uc.log.Info().Int64("insumo_id", id).Msg("insumo eliminado")
	return uc.mutated(ctx, MsgInsumoDeleted), nil
}

func (uc *InsumoUseCase) fetch(ctx context.Context) ([]entity.Insumo, bool) {
	list, err := uc.insumoRepo.List(ctx)
	return degrade.List(uc.log, "insumos", list, err)
}

func (uc *InsumoUseCase) mutated(ctx context.Context, msg string) *dto.InsumoMutationResponse {
	list, degraded := uc.fetch(ctx)
	return &dto.InsumoMutationResponse{Message: msg, Insumos: dto.NewList(dto.FromInsumos(list), degraded)}
}

// toInsumo exige todos los campos; precio y mínimos no negativos.
func toInsumo(in dto.InsumoRequest) (*entity.Insumo, error) {
	name := strings.TrimSpace(in.Name)
	um := strings.TrimSpace(in.UM)
	if name == "" || um == "" || in.UnitPrice == nil || in.Stock == nil || in.MinStock == nil {
		return nil, domain.NewValidation(domain.CodeValidation, MsgFieldsRequired)
	}
	if in.UnitPrice.IsNegative() || in.Stock.IsNegative() || in.MinStock.IsNegative() {
		return nil, domain.NewValidation(domain.CodeValidation, MsgFieldsRequired)
	}
	return &entity.Insumo{
		Name:      name,
		UnitPrice: *in.UnitPrice,
		UM:        um,
		Stock:     *in.Stock,
		MinStock:  *in.MinStock,
	}, nil
}
