package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ememar-console/internal/application/degrade"
	"github.com/jhoicas/ememar-console/internal/application/drafts"
	"github.com/jhoicas/ememar-console/internal/application/dto"
	"github.com/jhoicas/ememar-console/internal/domain"
	"github.com/jhoicas/ememar-console/internal/domain/entity"
	"github.com/jhoicas/ememar-console/internal/domain/repository"
)

// Mensajes al operador.
const (
	MsgLineRequired = "Selecciona un producto y cantidad"
	MsgSubmitGate   = "Selecciona un cliente y agrega al menos un producto"
	MsgCreditSaleOK = "Venta a crédito creada exitosamente"
	MsgCashSaleOK   = "Venta registrada exitosamente"
	MsgSaleFailed   = "Error al crear venta"
	MsgLineNotFound = "La línea no existe"
)

type saleDraft struct {
	ClientID int64
	IsCredit bool
	Items    []entity.SaleLine
}

// SalesUseCase borradores de venta y envío en una sola llamada.
type SalesUseCase struct {
	moveRepo   repository.MovementRepository
	creditRepo repository.CreditRepository
	drafts     *drafts.Store[saleDraft]
	offset     time.Duration
	log        zerolog.Logger
}

// NewSalesUseCase construye el caso de uso. draftTTL <= 0 usa 2h.
func NewSalesUseCase(
	moveRepo repository.MovementRepository,
	creditRepo repository.CreditRepository,
	draftTTL time.Duration,
	offset time.Duration,
	log zerolog.Logger,
) *SalesUseCase {
	return &SalesUseCase{
		moveRepo:   moveRepo,
		creditRepo: creditRepo,
		drafts:     drafts.NewStore[saleDraft](draftTTL),
		offset:     offset,
		log:        log.With().Str("usecase", "sales").Logger(),
	}
}

// NewDraft crea un borrador vacío.
func (uc *SalesUseCase) NewDraft(operatorID string) dto.SaleDraftResponse {
	id, exp := uc.drafts.Create(operatorID, saleDraft{})
	return toDraftResponse(id, saleDraft{}, exp)
}

// GetDraft devuelve el borrador.
func (uc *SalesUseCase) GetDraft(operatorID, draftID string) (*dto.SaleDraftResponse, error) {
	d, exp, err := uc.drafts.Get(operatorID, draftID)
	if err != nil {
		return nil, err
	}
	res := toDraftResponse(draftID, d, exp)
	return &res, nil
}

// UpdateDraft cambia cliente y/o tipo de venta.
func (uc *SalesUseCase) UpdateDraft(operatorID, draftID string, in dto.SaleDraftRequest) (*dto.SaleDraftResponse, error) {
	d, exp, err := uc.drafts.Update(operatorID, draftID, func(d *saleDraft) error {
		if in.ClientID != nil {
			d.ClientID = *in.ClientID
		}
		if in.IsCredit != nil {
			d.IsCredit = *in.IsCredit
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := toDraftResponse(draftID, d, exp)
	return &res, nil
}

// AddLine agrega una línea. Producto y cantidad deben ser positivos.
func (uc *SalesUseCase) AddLine(operatorID, draftID string, in dto.SaleLineDTO) (*dto.SaleDraftResponse, error) {
	if in.ProductID <= 0 || in.Quantity <= 0 {
		return nil, domain.NewValidation(domain.CodeValidation, MsgLineRequired)
	}
	d, exp, err := uc.drafts.Update(operatorID, draftID, func(d *saleDraft) error {
		items := make([]entity.SaleLine, 0, len(d.Items)+1)
		items = append(items, d.Items...)
		d.Items = append(items, entity.SaleLine{ProductID: in.ProductID, Quantity: in.Quantity})
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := toDraftResponse(draftID, d, exp)
	return &res, nil
}

// RemoveLine quita la línea en la posición index.
func (uc *SalesUseCase) RemoveLine(operatorID, draftID string, index int) (*dto.SaleDraftResponse, error) {
	d, exp, err := uc.drafts.Update(operatorID, draftID, func(d *saleDraft) error {
		if index < 0 || index >= len(d.Items) {
			return domain.NewValidation(domain.CodeNotFound, MsgLineNotFound)
		}
		items := make([]entity.SaleLine, 0, len(d.Items)-1)
		items = append(items, d.Items[:index]...)
		d.Items = append(items, d.Items[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := toDraftResponse(draftID, d, exp)
	return &res, nil
}

// DiscardDraft descarta el borrador.
func (uc *SalesUseCase) DiscardDraft(operatorID, draftID string) error {
	if !uc.drafts.Delete(operatorID, draftID) {
		return domain.NewValidation(domain.CodeNotFound, drafts.MsgDraftNotFound)
	}
	return nil
}

// Submit envía el borrador completo en un POST /moves/sell. Sin cliente o sin líneas no hay llamada.
// Si la API falla el borrador se conserva para reintentar.
func (uc *SalesUseCase) Submit(ctx context.Context, operatorID, draftID string) (*dto.SaleResultResponse, error) {
	d, _, err := uc.drafts.Get(operatorID, draftID)
	if err != nil {
		return nil, err
	}
	sale := entity.Sale{ClientID: d.ClientID, Items: d.Items, IsCredit: d.IsCredit}
	if err := ValidateSale(sale); err != nil {
		return nil, err
	}

	if err := uc.moveRepo.Sell(ctx, sale); err != nil {
		uc.log.Warn().Err(err).Int64("client_id", sale.ClientID).Msg("venta rechazada")
		return nil, fmt.Errorf("sales: vender: %w", err)
	}
	uc.drafts.Delete(operatorID, draftID)

	uc.log.Info().
		Int64("client_id", sale.ClientID).
		Int("lines", len(sale.Items)).
		Bool("is_credit", sale.IsCredit).
		Msg("venta registrada")

	msg := MsgCashSaleOK
	if sale.IsCredit {
		msg = MsgCreditSaleOK
	}

	moves, err := uc.moveRepo.List(ctx)
	moves, movesDegraded := degrade.List(uc.log, "moves", moves, err)
	credit, err := uc.creditRepo.ListSales(ctx)
	credit, creditDegraded := degrade.List(uc.log, "credit_sales", credit, err)

	return &dto.SaleResultResponse{
		Message:     msg,
		Movements:   dto.NewList(dto.FromMovements(moves, uc.offset), movesDegraded),
		CreditSales: dto.NewList(dto.FromCreditSales(credit, uc.offset), creditDegraded),
	}, nil
}

// ValidateSale cliente seleccionado y al menos una línea.
func ValidateSale(sale entity.Sale) error {
	if sale.ClientID <= 0 || len(sale.Items) == 0 {
		return domain.NewValidation(domain.CodeValidation, MsgSubmitGate)
	}
	return nil
}

func toDraftResponse(id string, d saleDraft, exp time.Time) dto.SaleDraftResponse {
	items := make([]dto.SaleLineDTO, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.SaleLineDTO{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return dto.SaleDraftResponse{
		DraftID: id, ClientID: d.ClientID, IsCredit: d.IsCredit, Items: items, ExpiresAt: exp,
	}
}
