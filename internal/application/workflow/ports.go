package workflow

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una transición de solicitud dentro de una transacción de BD
// con repositorios atados a la tx: cambio de estado, salidas en cascada y
// notificaciones se aplican todo-o-nada.
type TxRunner interface {
	RunRequest(ctx context.Context, fn func(
		pieceRepo repository.PieceRepository,
		movRepo repository.MovementRepository,
		notifRepo repository.NotificationRepository,
		requestRepo repository.RequestRepository,
	) error) error
}

// OutboundLedger registra una salida dentro de la transacción del caller.
// Implementado por inventory.RecordMovementUseCase (integración
// solicitudes→inventario).
type OutboundLedger interface {
	RegisterOUTInTx(
		pieceRepo repository.PieceRepository,
		movRepo repository.MovementRepository,
		notifRepo repository.NotificationRepository,
		piece *entity.Piece,
		quantity int64,
		userID, projectID, requestID string,
		now time.Time,
	) (*entity.Movement, error)
}

// RequestNotifier notifica al solicitante la resolución de su solicitud.
// Implementado por notification.Emitter.
type RequestNotifier interface {
	EmitRequestResolved(notifRepo repository.NotificationRepository, request *entity.Request, eventID string) error
}
