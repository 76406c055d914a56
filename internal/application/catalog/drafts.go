package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ememar-console/internal/application/degrade"
	"github.com/jhoicas/ememar-console/internal/application/drafts"
	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
	domcat "github.com/jhoicas/ememar-console/internal/domain/catalog"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	dominv "github.com/jhoicas/ememar-console/internal/domain/inventory"
)

// productDraft producto aún no creado. La composición es local hasta SubmitDraft.
type productDraft struct {
	Name  string
	Price decimal.Decimal
	Foto  string
	Lines []entity.ProductInsumo
}

// NewDraft crea un borrador de producto vacío.
func (uc *CatalogUseCase) NewDraft(ctx context.Context, operatorID string) dto.ProductDraftResponse {
	id, exp := uc.drafts.Create(operatorID, productDraft{})
	return uc.draftResponse(ctx, id, productDraft{}, exp)
}

// GetDraft devuelve el borrador con el costo estimado según los precios actuales.
func (uc *CatalogUseCase) GetDraft(ctx context.Context, operatorID, draftID string) (*dto.ProductDraftResponse, error) {
	d, exp, err := uc.drafts.Get(operatorID, draftID)
	if err != nil {
		return nil, err
	}
	res := uc.draftResponse(ctx, draftID, d, exp)
	return &res, nil
}

// UpdateDraft cambia nombre, precio o foto.
func (uc *CatalogUseCase) UpdateDraft(ctx context.Context, operatorID, draftID string, in dto.ProductDraftRequest) (*dto.ProductDraftResponse, error) {
	return uc.editDraft(ctx, operatorID, draftID, func(d *productDraft) error {
		if in.Name != nil {
			d.Name = *in.Name
		}
		if in.Price != nil {
			d.Price = *in.Price
		}
		if in.Foto != nil {
			d.Foto = *in.Foto
		}
		return nil
	})
}

// DraftAddInsumo agrega un insumo; un insumo repetido se rechaza.
func (uc *CatalogUseCase) DraftAddInsumo(ctx context.Context, operatorID, draftID string, in dto.CompositionLineRequest) (*dto.ProductDraftResponse, error) {
	return uc.editComposition(ctx, operatorID, draftID, func(c *domcat.Composition) error {
		return c.Add(in.InsumoID, in.Quantity)
	})
}

// DraftSetQuantity cambia la cantidad de un insumo del borrador.
func (uc *CatalogUseCase) DraftSetQuantity(ctx context.Context, operatorID, draftID string, insumoID int64, in dto.QuantityRequest) (*dto.ProductDraftResponse, error) {
	return uc.editComposition(ctx, operatorID, draftID, func(c *domcat.Composition) error {
		return c.SetQuantity(insumoID, in.Quantity)
	})
}

// DraftRemoveInsumo quita un insumo del borrador.
func (uc *CatalogUseCase) DraftRemoveInsumo(ctx context.Context, operatorID, draftID string, insumoID int64) (*dto.ProductDraftResponse, error) {
	return uc.editComposition(ctx, operatorID, draftID, func(c *domcat.Composition) error {
		c.Remove(insumoID)
		return nil
	})
}

// DiscardDraft descarta el borrador sin llamar a la API.
func (uc *CatalogUseCase) DiscardDraft(operatorID, draftID string) error {
	if !uc.drafts.Delete(operatorID, draftID) {
		return domain.NewValidation(domain.CodeNotFound, drafts.MsgDraftNotFound)
	}
	return nil
}

// SubmitDraft crea el producto con la composición del borrador. Si la API falla el borrador se conserva.
func (uc *CatalogUseCase) SubmitDraft(ctx context.Context, operatorID, draftID string) (*dto.ProductMutationResponse, error) {
	d, _, err := uc.drafts.Get(operatorID, draftID)
	if err != nil {
		return nil, err
	}
	res, err := uc.create(ctx, dto.ProductRequest{Name: d.Name, Price: d.Price, Foto: d.Foto}, d.Lines)
	if err != nil {
		return nil, err
	}
	uc.drafts.Delete(operatorID, draftID)
	return res, nil
}

func (uc *CatalogUseCase) editComposition(ctx context.Context, operatorID, draftID string, fn func(*domcat.Composition) error) (*dto.ProductDraftResponse, error) {
	return uc.editDraft(ctx, operatorID, draftID, func(d *productDraft) error {
		c := domcat.NewComposition(d.Lines)
		if err := fn(c); err != nil {
			return err
		}
		d.Lines = c.Lines()
		return nil
	})
}

func (uc *CatalogUseCase) editDraft(ctx context.Context, operatorID, draftID string, fn func(*productDraft) error) (*dto.ProductDraftResponse, error) {
	d, exp, err := uc.drafts.Update(operatorID, draftID, fn)
	if err != nil {
		return nil, err
	}
	res := uc.draftResponse(ctx, draftID, d, exp)
	return &res, nil
}

// draftResponse estima el costo con los insumos vigentes; sin listado el costo queda en cero.
func (uc *CatalogUseCase) draftResponse(ctx context.Context, id string, d productDraft, exp time.Time) dto.ProductDraftResponse {
	cost := decimal.Zero
	if len(d.Lines) > 0 {
		insumos, err := uc.insumoRepo.List(ctx)
		insumos, _ = degrade.List(uc.log, "insumos", insumos, err)
		cost = dominv.CompositionCost(d.Lines, insumos)
	}
	return dto.ProductDraftResponse{
		DraftID:       id,
		Name:          d.Name,
		Price:         d.Price,
		HasFoto:       d.Foto != "",
		Insumos:       dto.FromProductInsumos(d.Lines),
		EstimatedCost: cost,
		ExpiresAt:     exp,
	}
}
