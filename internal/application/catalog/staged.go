package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
	domcat "github.com/jhoicas/ememar-console/internal/domain/catalog"
)

type stagedKey struct {
	operator  string
	productID int64
}

// stagedEdits cantidades editadas sin enviar, por operador y producto.
type stagedEdits struct {
	mu    sync.Mutex
	edits map[stagedKey]map[int64]decimal.Decimal
}

func newStagedEdits() *stagedEdits {
	return &stagedEdits{edits: make(map[stagedKey]map[int64]decimal.Decimal)}
}

func (s *stagedEdits) set(k stagedKey, insumoID int64, qty decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.edits[k]
	if !ok {
		m = make(map[int64]decimal.Decimal)
		s.edits[k] = m
	}
	m[insumoID] = qty
}

func (s *stagedEdits) get(k stagedKey, insumoID int64) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	qty, ok := s.edits[k][insumoID]
	return qty, ok
}

// clear quita la edición; si el producto queda sin ediciones se borra la entrada.
func (s *stagedEdits) clear(k stagedKey, insumoID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.edits[k]
	if !ok {
		return false
	}
	if _, ok := m[insumoID]; !ok {
		return false
	}
	delete(m, insumoID)
	if len(m) == 0 {
		delete(s.edits, k)
	}
	return true
}

func (s *stagedEdits) list(k stagedKey) []dto.ProductInsumoDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dto.ProductInsumoDTO, 0, len(s.edits[k]))
	for id, qty := range s.edits[k] {
		out = append(out, dto.ProductInsumoDTO{InsumoID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InsumoID < out[j].InsumoID })
	return out
}

func (s *stagedEdits) dropProduct(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.edits {
		if k.productID == productID {
			delete(s.edits, k)
		}
	}
}

// StageQuantity guarda una cantidad sin enviarla.
func (uc *CatalogUseCase) StageQuantity(operatorID string, productID, insumoID int64, in dto.QuantityRequest) (*dto.StagedEditsResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := domcat.ValidateLine(insumoID, in.Quantity); err != nil {
		return nil, err
	}
	k := stagedKey{operatorID, productID}
	uc.staged.set(k, insumoID, in.Quantity)
	return &dto.StagedEditsResponse{ProductID: productID, Staged: uc.staged.list(k)}, nil
}

// Staged ediciones pendientes del operador para el producto.
func (uc *CatalogUseCase) Staged(operatorID string, productID int64) dto.StagedEditsResponse {
	return dto.StagedEditsResponse{ProductID: productID, Staged: uc.staged.list(stagedKey{operatorID, productID})}
}

// CommitStaged envía la cantidad pendiente con un PUT y la limpia solo si el servidor la aceptó.
func (uc *CatalogUseCase) CommitStaged(ctx context.Context, operatorID string, productID, insumoID int64) (*dto.ProductMutationResponse, error) {
	k := stagedKey{operatorID, productID}
	qty, ok := uc.staged.get(k, insumoID)
	if !ok {
		return nil, domain.NewValidation(domain.CodeNotFound, MsgNothingStaged)
	}
	if err := uc.productRepo.UpdateInsumo(ctx, productID, insumoID, qty); err != nil {
		return nil, fmt.Errorf("catalog: confirmar cantidad de insumo %d en producto %d: %w", insumoID, productID, err)
	}
	uc.staged.clear(k, insumoID)
	return uc.mutated(ctx, MsgQuantitySaved), nil
}

// CancelStaged descarta la cantidad pendiente sin llamar a la API.
func (uc *CatalogUseCase) CancelStaged(operatorID string, productID, insumoID int64) (*dto.StagedEditsResponse, error) {
	k := stagedKey{operatorID, productID}
	if !uc.staged.clear(k, insumoID) {
		return nil, domain.NewValidation(domain.CodeNotFound, MsgNothingStaged)
	}
	return &dto.StagedEditsResponse{ProductID: productID, Staged: uc.staged.list(k)}, nil
}
