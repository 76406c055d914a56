package clients

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
	"github.com/jhoicas/ememar-console/internal/domain/repository"
	"github.com/jhoicas/ememar-console/pkg/textsearch"
)

// Mensajes al operador.
const (
	MsgNameRequired  = "El nombre del cliente es obligatorio"
	MsgInvalidDebt   = "La deuda no puede ser negativa"
	MsgClientCreated = "Cliente creado exitosamente"
	MsgClientUpdated = "Cliente actualizado exitosamente"
	MsgClientDeleted = "Cliente eliminado exitosamente"
	MsgCreateFailed  = "Error al crear cliente"
	MsgUpdateFailed  = "Error al actualizar cliente"
	MsgDeleteFailed  = "Error al eliminar cliente"
)

// ClientUseCase CRUD de clientes e historial.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	moveRepo   repository.MovementRepository
	creditRepo repository.CreditRepository
	offset     time.Duration
	log        zerolog.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(
	clientRepo repository.ClientRepository,
	moveRepo repository.MovementRepository,
	creditRepo repository.CreditRepository,
	offset time.Duration,
	log zerolog.Logger,
) *ClientUseCase {
	return &ClientUseCase{
		clientRepo: clientRepo,
		moveRepo:   moveRepo,
		creditRepo: creditRepo,
		offset:     offset,
		log:        log.With().Str("usecase", "clients").Logger(),
	}
}

// List clientes filtrados por nombre o teléfono. onlyDebtors deja solo los que deben.
func (uc *ClientUseCase) List(ctx context.Context, query string, onlyDebtors bool) dto.ListResponse[dto.ClientResponse] {
	list, degraded := uc.fetch(ctx)
	out := make([]entity.Client, 0, len(list))
	for _, c := range list {
		if onlyDebtors && !c.HasDebt() {
			continue
		}
		if textsearch.Contains(query, c.Name, c.Phone) {
			out = append(out, c)
		}
	}
	return dto.NewList(dto.FromClients(out), degraded)
}

// Get busca un cliente por id en el listado remoto.
func (uc *ClientUseCase) Get(ctx context.Context, id int64) (*entity.Client, error) {
	list, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("clients: listar: %w", err)
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create valida y crea el cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientMutationResponse, error) {
	c, err := toClient(in)
	if err != nil {
		return nil, err
	}
	if err := uc.clientRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("clients: crear: %w", err)
	}
	uc.log.Info().Str("name", c.Name).Msg("cliente creado")
	return uc.mutated(ctx, MsgClientCreated), nil
}

// Update reemplaza nombre, teléfono y deuda.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.ClientRequest) (*dto.ClientMutationResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	c, err := toClient(in)
	if err != nil {
		return nil, err
	}
	c.ID = id
	if err := uc.clientRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("clients: actualizar %d: %w", id, err)
	}
	return uc.mutated(ctx, MsgClientUpdated), nil
}

// Delete elimina el cliente; el listado devuelto es el del servidor tras el DELETE.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) (*dto.ClientMutationResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.clientRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("clients: eliminar %d: %w", id, err)
	}
	uc.log.Info().Int64("client_id", id).Msg("cliente eliminado")
	return uc.mutated(ctx, MsgClientDeleted), nil
}

// History movimientos y ventas a crédito del cliente. Si alguna lectura falla se devuelve vacía.
func (uc *ClientUseCase) History(ctx context.Context, clientID int64) (*dto.ClientHistoryResponse, error) {
	if clientID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	moves, err := uc.moveRepo.ByClient(ctx, clientID)
	moves, movesDegraded := degrade.List(uc.log, "client_moves", moves, err)
	sales, err := uc.creditRepo.SalesByClient(ctx, clientID)
	sales, salesDegraded := degrade.List(uc.log, "client_credit_sales", sales, err)

	return &dto.ClientHistoryResponse{
		ClientID:    clientID,
		Movements:   dto.FromMovements(moves, uc.offset),
		CreditSales: dto.FromCreditSales(sales, uc.offset),
		Degraded:    movesDegraded || salesDegraded,
	}, nil
}

func (uc *ClientUseCase) fetch(ctx context.Context) ([]entity.Client, bool) {
	list, err := uc.clientRepo.List(ctx)
	return degrade.List(uc.log, "clients", list, err)
}

func (uc *ClientUseCase) mutated(ctx context.Context, msg string) *dto.ClientMutationResponse {
	list, degraded := uc.fetch(ctx)
	return &dto.ClientMutationResponse{Message: msg, Clients: dto.NewList(dto.FromClients(list), degraded)}
}

func toClient(in dto.ClientRequest) (*entity.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidation(domain.CodeValidation, MsgNameRequired)
	}
	if in.Debt.IsNegative() {
		return nil, domain.NewValidation(domain.CodeValidation, MsgInvalidDebt)
	}
	return &entity.Client{Name: name, Phone: strings.TrimSpace(in.Phone), Debt: in.Debt}, nil
}
