package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de inventario de forma
// transaccional (IN, OUT, TRANSFER) con bloqueo de fila sobre la pieza
// (SELECT FOR UPDATE) y Commit/Rollback. El asiento en el libro, la
// actualización de cantidad y la notificación de stock bajo se aplican
// todo-o-nada: si el registro rechaza el delta, el movimiento no queda.
type RecordMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository // atado al pool, solo consultas
	notifier LowStockNotifier
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository, notifier LowStockNotifier) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, movRepo: movRepo, notifier: notifier}
}

// MovementInput entrada para registrar un movimiento.
// Para IN: ToLocation opcional (nueva ubicación de la pieza).
// Para OUT: FromLocation opcional; si viene debe coincidir con la actual.
// Para TRANSFER: FromLocation y ToLocation obligatorias y distintas.
type MovementInput struct {
	UserID       string
	PieceID      string
	Type         string
	Quantity     int64
	FromLocation string
	ToLocation   string
	ProjectID    string
	Notes        string
}

// RecordMovement valida las reglas por tipo, inicia una transacción, bloquea
// la fila de la pieza, aplica el delta y apila el asiento inmutable. Devuelve
// el movimiento creado.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.PieceID == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		// reglas de ubicación se verifican contra la pieza dentro de la tx
	case entity.MovementTypeTRANSFER:
		if input.FromLocation == "" || input.ToLocation == "" || input.FromLocation == input.ToLocation {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	movID := uuid.New().String()

	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		pieceRepo repository.PieceRepository,
		movRepo repository.MovementRepository,
		notifRepo repository.NotificationRepository,
	) error {
		// Bloquea la fila de la pieza para serializar los deltas por pieza
		piece, err := pieceRepo.GetForUpdate(input.PieceID)
		if err != nil {
			return err
		}
		if piece == nil {
			return domain.ErrNotFound
		}
		if !piece.Active {
			return domain.ErrPieceInactive
		}

		switch input.Type {
		case entity.MovementTypeIN:
			created, err = uc.doIN(pieceRepo, movRepo, notifRepo, piece, input, now, movID)
		case entity.MovementTypeOUT:
			created, err = uc.doOUT(pieceRepo, movRepo, notifRepo, piece, input, now, movID)
		case entity.MovementTypeTRANSFER:
			created, err = uc.doTRANSFER(pieceRepo, movRepo, piece, input, now, movID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// doIN: suma la cantidad; si viene ToLocation la pieza se reubica allí.
func (uc *RecordMovementUseCase) doIN(
	pieceRepo repository.PieceRepository,
	movRepo repository.MovementRepository,
	notifRepo repository.NotificationRepository,
	piece *entity.Piece,
	input MovementInput,
	now time.Time, movID string,
) (*entity.Movement, error) {
	prevStatus := piece.StockStatus()
	piece.Quantity += input.Quantity
	if input.ToLocation != "" {
		piece.Location = input.ToLocation
	}
	piece.UpdatedAt = now
	if err := pieceRepo.Update(piece); err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		ID:           movID,
		PieceID:      piece.ID,
		Type:         entity.MovementTypeIN,
		Quantity:     input.Quantity,
		FromLocation: input.FromLocation,
		ToLocation:   piece.Location,
		CreatedBy:    input.UserID,
		ProjectID:    input.ProjectID,
		Notes:        input.Notes,
		CreatedAt:    now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	if err := uc.notifier.EmitLowStock(notifRepo, piece, prevStatus, movID); err != nil {
		return nil, err
	}
	return mov, nil
}

// doOUT: verifica ubicación de origen y que el resultado no quede negativo,
// resta la cantidad y apila el asiento.
func (uc *RecordMovementUseCase) doOUT(
	pieceRepo repository.PieceRepository,
	movRepo repository.MovementRepository,
	notifRepo repository.NotificationRepository,
	piece *entity.Piece,
	input MovementInput,
	now time.Time, movID string,
) (*entity.Movement, error) {
	if input.FromLocation != "" && input.FromLocation != piece.Location {
		return nil, domain.ErrInvalidInput
	}
	if piece.Quantity-input.Quantity < 0 {
		return nil, domain.ErrNegativeStock
	}
	prevStatus := piece.StockStatus()
	piece.Quantity -= input.Quantity
	piece.UpdatedAt = now
	if err := pieceRepo.Update(piece); err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		ID:           movID,
		PieceID:      piece.ID,
		Type:         entity.MovementTypeOUT,
		Quantity:     input.Quantity,
		FromLocation: piece.Location,
		CreatedBy:    input.UserID,
		ProjectID:    input.ProjectID,
		Notes:        input.Notes,
		CreatedAt:    now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	if err := uc.notifier.EmitLowStock(notifRepo, piece, prevStatus, movID); err != nil {
		return nil, err
	}
	return mov, nil
}

// doTRANSFER: la cantidad total no cambia; el origen debe coincidir con la
// ubicación registrada y la pieza queda en la ubicación destino.
func (uc *RecordMovementUseCase) doTRANSFER(
	pieceRepo repository.PieceRepository,
	movRepo repository.MovementRepository,
	piece *entity.Piece,
	input MovementInput,
	now time.Time, movID string,
) (*entity.Movement, error) {
	if input.FromLocation != piece.Location {
		return nil, domain.ErrInvalidInput
	}
	piece.Location = input.ToLocation
	piece.UpdatedAt = now
	if err := pieceRepo.Update(piece); err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		ID:           movID,
		PieceID:      piece.ID,
		Type:         entity.MovementTypeTRANSFER,
		Quantity:     input.Quantity,
		FromLocation: input.FromLocation,
		ToLocation:   input.ToLocation,
		CreatedBy:    input.UserID,
		ProjectID:    input.ProjectID,
		Notes:        input.Notes,
		CreatedAt:    now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterOUTInTx ejecuta una salida usando los repositorios proporcionados
// (misma transacción del caller). Implementa la integración
// solicitudes→inventario: el surtido de una solicitud registra una salida por
// línea dentro de su propia transacción. La pieza debe venir ya bloqueada y
// validada por el caller.
func (uc *RecordMovementUseCase) RegisterOUTInTx(
	pieceRepo repository.PieceRepository,
	movRepo repository.MovementRepository,
	notifRepo repository.NotificationRepository,
	piece *entity.Piece,
	quantity int64,
	userID, projectID, requestID string,
	now time.Time,
) (*entity.Movement, error) {
	if piece.Quantity-quantity < 0 {
		return nil, domain.ErrNegativeStock
	}
	prevStatus := piece.StockStatus()
	piece.Quantity -= quantity
	piece.UpdatedAt = now
	if err := pieceRepo.Update(piece); err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		ID:           uuid.New().String(),
		PieceID:      piece.ID,
		Type:         entity.MovementTypeOUT,
		Quantity:     quantity,
		FromLocation: piece.Location,
		CreatedBy:    userID,
		ProjectID:    projectID,
		RequestID:    requestID,
		CreatedAt:    now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	if err := uc.notifier.EmitLowStock(notifRepo, piece, prevStatus, mov.ID); err != nil {
		return nil, err
	}
	return mov, nil
}

// RecordMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RecordMovementUseCase) RecordMovementFromRequest(ctx context.Context, userID string, in dto.RecordMovementRequest) (*entity.Movement, error) {
	return uc.RecordMovement(ctx, MovementInput{
		UserID:       userID,
		PieceID:      in.PieceID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		ProjectID:    in.ProjectID,
		Notes:        in.Notes,
	})
}

// ListByPiece lista el historial de movimientos de una pieza.
func (uc *RecordMovementUseCase) ListByPiece(pieceID string, from, to *time.Time, page dto.PageRequest) ([]*entity.Movement, error) {
	page.DefaultPage()
	return uc.movRepo.ListByPiece(pieceID, from, to, page.Limit, page.Offset)
}

// List lista movimientos con filtros opcionales de pieza, tipo y rango de fechas.
func (uc *RecordMovementUseCase) List(pieceID, movType string, from, to *time.Time, page dto.PageRequest) ([]*entity.Movement, error) {
	page.DefaultPage()
	if movType != "" {
		switch movType {
		case entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeTRANSFER:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	return uc.movRepo.List(pieceID, movType, from, to, page.Limit, page.Offset)
}
