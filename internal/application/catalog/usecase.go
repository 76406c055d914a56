package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ememar-console/internal/application/degrade"
	"github.com/jhoicas/ememar-console/internal/application/drafts"
	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
	domcat "github.com/jhoicas/ememar-console/internal/domain/catalog"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
	"github.com/jhoicas/ememar-console/pkg/textsearch"
)

// Mensajes al operador.
const (
	MsgProductCreated = "Producto creado exitosamente"
	MsgProductUpdated = "Producto actualizado exitosamente"
	MsgProductDeleted = "Producto eliminado exitosamente."
	MsgInsumoAdded    = "Insumo agregado exitosamente"
	MsgQuantitySaved  = "Cantidad actualizada exitosamente"
	MsgInsumoRemoved  = "Insumo eliminado del producto"
	MsgCreateFailed   = "Error al crear producto"
	MsgUpdateFailed   = "Error al actualizar producto"
	MsgDeleteFailed   = "Error al eliminar producto"
	MsgAddFailed      = "Error al agregar insumo"
	MsgQuantityFailed = "Error al actualizar cantidad"
	MsgRemoveFailed   = "Error al eliminar insumo"
	MsgNothingStaged  = "No hay cambios pendientes para este insumo"
)

// CatalogUseCase productos, su composición y los borradores de producto.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	insumoRepo  repository.InsumoRepository
	photos      PhotoOptimizer
	drafts      *drafts.Store[productDraft]
	staged      *stagedEdits
	log         zerolog.Logger
}

// NewCatalogUseCase construye el caso de uso. photos puede ser nil (la foto se envía tal cual).
func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	insumoRepo repository.InsumoRepository,
	photos PhotoOptimizer,
	log zerolog.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		insumoRepo:  insumoRepo,
		photos:      photos,
		drafts:      drafts.NewStore[productDraft](0),
		staged:      newStagedEdits(),
		log:         log.With().Str("usecase", "catalog").Logger(),
	}
}

// List productos filtrados por nombre.
func (uc *CatalogUseCase) List(ctx context.Context, query string) dto.ListResponse[dto.ProductResponse] {
	list, degraded := uc.fetch(ctx)
	out := make([]entity.Product, 0, len(list))
	for _, p := range list {
		if textsearch.Contains(query, p.Name) {
			out = append(out, p)
		}
	}
	return dto.NewList(dto.FromProducts(out), degraded)
}

// Profitability productos de menor a mayor ganancia con el conteo de los que no ganan.
func (uc *CatalogUseCase) Profitability(ctx context.Context) dto.ProfitabilityResponse {
	list, degraded := uc.fetch(ctx)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Profit().LessThan(list[j].Profit())
	})
	unprofitable := 0
	for i := range list {
		if !list[i].IsProfitable() {
			unprofitable++
		}
	}
	return dto.ProfitabilityResponse{
		Products:     dto.FromProducts(list),
		Unprofitable: unprofitable,
		Degraded:     degraded,
	}
}

// Create crea un producto con su composición en un solo POST y re-consulta para obtener costo_total.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductMutationResponse, error) {
	comp := domcat.NewComposition(nil)
	for _, l := range in.Insumos {
		if err := comp.Add(l.InsumoID, l.Quantity); err != nil {
			return nil, err
		}
	}
	return uc.create(ctx, in, comp.Lines())
}

func (uc *CatalogUseCase) create(ctx context.Context, in dto.ProductRequest, lines []entity.ProductInsumo) (*dto.ProductMutationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if err := domcat.ValidateProduct(name, in.Price); err != nil {
		return nil, err
	}
	foto, err := uc.photo(in.Foto)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{Name: name, Price: in.Price, Foto: foto, Insumos: lines}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("catalog: crear producto: %w", err)
	}
	uc.log.Info().Str("name", name).Int("insumos", len(lines)).Msg("producto creado")
	return uc.mutated(ctx, MsgProductCreated), nil
}

// Update envía solo nombre, precio y foto. La composición no viaja en esta llamada.
func (uc *CatalogUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductMutationResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if err := domcat.ValidateProduct(name, in.Price); err != nil {
		return nil, err
	}
	foto, err := uc.photo(in.Foto)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{ID: id, Name: name, Price: in.Price, Foto: foto}
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("catalog: actualizar producto %d: %w", id, err)
	}
	return uc.mutated(ctx, MsgProductUpdated), nil
}

// Delete elimina el producto; el listado devuelto es el del servidor tras el DELETE.
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64) (*dto.ProductMutationResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("catalog: eliminar producto %d: %w", id, err)
	}
	uc.staged.dropProduct(id)
	uc.log.Info().Int64("product_id", id).Msg("producto eliminado")
	return uc.mutated(ctx, MsgProductDeleted), nil
}

// ── composición en vivo ───────────────────────────────────────────────────────

// AddInsumo agrega un insumo a un producto existente. Un POST y luego refresco completo.
func (uc *CatalogUseCase) AddInsumo(ctx context.Context, productID int64, in dto.CompositionLineRequest) (*dto.ProductMutationResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := domcat.ValidateLine(in.InsumoID, in.Quantity); err != nil {
		return nil, err
	}
	if err := uc.productRepo.AddInsumo(ctx, productID, in.InsumoID, in.Quantity); err != nil {
		return nil, fmt.Errorf("catalog: agregar insumo %d a producto %d: %w", in.InsumoID, productID, err)
	}
	return uc.mutated(ctx, MsgInsumoAdded), nil
}

// UpdateInsumo cambia la cantidad de un insumo ya presente.
func (uc *CatalogUseCase) UpdateInsumo(ctx context.Context, productID, insumoID int64, in dto.QuantityRequest) (*dto.ProductMutationResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := domcat.ValidateLine(insumoID, in.Quantity); err != nil {
		return nil, err
	}
	if err := uc.productRepo.UpdateInsumo(ctx, productID, insumoID, in.Quantity); err != nil {
		return nil, fmt.Errorf("catalog: cantidad de insumo %d en producto %d: %w", insumoID, productID, err)
	}
	return uc.mutated(ctx, MsgQuantitySaved), nil
}

// RemoveInsumo quita un insumo del producto.
func (uc *CatalogUseCase) RemoveInsumo(ctx context.Context, productID, insumoID int64) (*dto.ProductMutationResponse, error) {
	if productID <= 0 || insumoID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.productRepo.RemoveInsumo(ctx, productID, insumoID); err != nil {
		return nil, fmt.Errorf("catalog: quitar insumo %d de producto %d: %w", insumoID, productID, err)
	}
	return uc.mutated(ctx, MsgInsumoRemoved), nil
}

func (uc *CatalogUseCase) fetch(ctx context.Context) ([]entity.Product, bool) {
	list, err := uc.productRepo.List(ctx)
	return degrade.List(uc.log, "products", list, err)
}

func (uc *CatalogUseCase) mutated(ctx context.Context, msg string) *dto.ProductMutationResponse {
	list, degraded := uc.fetch(ctx)
	return &dto.ProductMutationResponse{Message: msg, Products: dto.NewList(dto.FromProducts(list), degraded)}
}

func (uc *CatalogUseCase) photo(foto string) (string, error) {
	if uc.photos == nil || foto == "" {
		return foto, nil
	}
	return uc.photos.Optimize(foto)
}
