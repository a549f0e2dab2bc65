package workflow

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// RequestUseCase ciclo de vida de solicitudes internas: creación, consulta y
// transiciones de estado. El surtido (FULFILLED) es en dos fases dentro de una
// sola transacción: primero bloquea y valida todas las líneas, después aplica
// todas las salidas; cualquier faltante revierte la transición completa.
type RequestUseCase struct {
	txRunner    TxRunner
	requestRepo repository.RequestRepository // atado al pool, solo consultas
	pieceRepo   repository.PieceRepository   // atado al pool, solo validación de alta
	ledger      OutboundLedger
	notifier    RequestNotifier
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(
	txRunner TxRunner,
	requestRepo repository.RequestRepository,
	pieceRepo repository.PieceRepository,
	ledger OutboundLedger,
	notifier RequestNotifier,
) *RequestUseCase {
	return &RequestUseCase{
		txRunner:    txRunner,
		requestRepo: requestRepo,
		pieceRepo:   pieceRepo,
		ledger:      ledger,
		notifier:    notifier,
	}
}

// Create da de alta una solicitud en estado PENDING. La lista de líneas no
// puede ser vacía, cada cantidad debe ser positiva y cada pieza debe existir
// y estar activa.
func (uc *RequestUseCase) Create(requesterID string, in dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.RequestItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.PieceID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		piece, err := uc.pieceRepo.GetByID(it.PieceID)
		if err != nil {
			return nil, err
		}
		if piece == nil {
			return nil, domain.ErrNotFound
		}
		if !piece.Active {
			return nil, domain.ErrPieceInactive
		}
		items = append(items, entity.RequestItem{PieceID: it.PieceID, Quantity: it.Quantity})
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.IsValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	request := &entity.Request{
		ID:          uuid.New().String(),
		RequesterID: requesterID,
		Items:       items,
		Status:      entity.RequestStatusPending,
		Priority:    priority,
		ProjectID:   in.ProjectID,
		Comments:    in.Comments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return toRequestResponse(request), nil
}

// Transition cambia el estado de la solicitud según la máquina de estados.
// CANCELLED solo lo puede pedir el solicitante o un admin. FULFILLED surte
// todas las líneas con salidas en cascada; la notificación al solicitante se
// emite en la misma transacción que la mutación.
func (uc *RequestUseCase) Transition(ctx context.Context, requestID, targetStatus, actorID, actorRole string) (*dto.RequestResponse, error) {
	if !entity.IsValidRequestStatus(targetStatus) {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Request
	err := uc.txRunner.RunRequest(ctx, func(
		pieceRepo repository.PieceRepository,
		movRepo repository.MovementRepository,
		notifRepo repository.NotificationRepository,
		requestRepo repository.RequestRepository,
	) error {
		request, err := requestRepo.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransition(request.Status, targetStatus) {
			return domain.ErrInvalidTransition
		}
		// CANCELLED lo pide el solicitante (o un admin); el resto de
		// transiciones las resuelve el almacén.
		if targetStatus == entity.RequestStatusCancelled {
			if actorID != request.RequesterID && actorRole != entity.RoleAdmin {
				return domain.ErrForbidden
			}
		} else if actorRole != entity.RoleAdmin && actorRole != entity.RoleAlmacenista {
			return domain.ErrForbidden
		}

		now := time.Now()
		if targetStatus == entity.RequestStatusFulfilled {
			if err := uc.fulfill(pieceRepo, movRepo, notifRepo, request, now); err != nil {
				return err
			}
		}

		request.Status = targetStatus
		request.UpdatedAt = now
		if err := requestRepo.Update(request); err != nil {
			return err
		}

		if targetStatus == entity.RequestStatusFulfilled || targetStatus == entity.RequestStatusRejected {
			eventID := request.ID + ":" + targetStatus
			if err := uc.notifier.EmitRequestResolved(notifRepo, request, eventID); err != nil {
				return err
			}
		}
		result = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRequestResponse(result), nil
}

// fulfill surte la solicitud en dos fases. Fase 1: bloquea las piezas en orden
// ascendente de ID (evita interbloqueos) y valida disponibilidad de todas las
// líneas. Fase 2: registra una salida por línea vía el libro de movimientos.
func (uc *RequestUseCase) fulfill(
	pieceRepo repository.PieceRepository,
	movRepo repository.MovementRepository,
	notifRepo repository.NotificationRepository,
	request *entity.Request,
	now time.Time,
) error {
	items := make([]entity.RequestItem, len(request.Items))
	copy(items, request.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].PieceID < items[j].PieceID })

	// Una misma pieza puede aparecer en varias líneas: lo que se valida es el
	// total pedido por pieza, no cada línea por separado.
	needed := make(map[string]int64, len(items))
	var pieceIDs []string
	for _, it := range items {
		if _, ok := needed[it.PieceID]; !ok {
			pieceIDs = append(pieceIDs, it.PieceID)
		}
		needed[it.PieceID] += it.Quantity
	}

	// Fase 1: bloquear cada pieza una sola vez y validar el total
	locked := make(map[string]*entity.Piece, len(pieceIDs))
	for _, pieceID := range pieceIDs {
		piece, err := pieceRepo.GetForUpdate(pieceID)
		if err != nil {
			return err
		}
		if piece == nil {
			return domain.ErrNotFound
		}
		if !piece.Active {
			return domain.ErrPieceInactive
		}
		if piece.Quantity < needed[pieceID] {
			return domain.ErrInsufficientStock
		}
		locked[pieceID] = piece
	}

	// Fase 2: aplicar todas las salidas
	for _, it := range items {
		piece := locked[it.PieceID]
		if _, err := uc.ledger.RegisterOUTInTx(
			pieceRepo, movRepo, notifRepo,
			piece, it.Quantity,
			request.RequesterID, request.ProjectID, request.ID, now,
		); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (uc *RequestUseCase) GetByID(id string) (*dto.RequestResponse, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	return toRequestResponse(request), nil
}

// List lista solicitudes con filtros opcionales de estado y solicitante.
func (uc *RequestUseCase) List(status, requesterID string, page dto.PageRequest) (*dto.RequestListResponse, error) {
	if status != "" && !entity.IsValidRequestStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.requestRepo.List(status, requesterID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRequestResponse(r))
	}
	return &dto.RequestListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toRequestResponse(r *entity.Request) *dto.RequestResponse {
	items := make([]dto.RequestItemDTO, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.RequestItemDTO{PieceID: it.PieceID, Quantity: it.Quantity})
	}
	return &dto.RequestResponse{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		Items:       items,
		Status:      r.Status,
		Priority:    r.Priority,
		ProjectID:   r.ProjectID,
		Comments:    r.Comments,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
