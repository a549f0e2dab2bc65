package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cantidad, asiento en el libro y
// notificaciones derivadas se apliquen todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pieceRepo repository.PieceRepository,
		movRepo repository.MovementRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}

// LowStockNotifier evalúa el cruce de umbral de stock tras una mutación y
// emite la notificación correspondiente dentro de la misma transacción.
// Implementado por notification.Emitter.
type LowStockNotifier interface {
	EmitLowStock(notifRepo repository.NotificationRepository, piece *entity.Piece, prevStatus, eventID string) error
}
