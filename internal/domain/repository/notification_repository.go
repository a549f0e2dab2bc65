package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para notificaciones.
// Una vez creadas son inmutables salvo la marca de lectura.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	// MarkRead es idempotente: marcar una notificación ya leída no es error.
	MarkRead(id string) error
	ListUnread(userID string, limit, offset int) ([]*entity.Notification, error)
	// ExistsByEvent indica si ya se emitió una notificación para (evento, usuario).
	ExistsByEvent(eventID, userID string) (bool, error)
}
