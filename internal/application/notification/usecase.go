package notification

import (
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// UseCase consultas y marca de lectura de notificaciones.
type UseCase struct {
	notifRepo repository.NotificationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(notifRepo repository.NotificationRepository) *UseCase {
	return &UseCase{notifRepo: notifRepo}
}

// MarkRead marca una notificación como leída. Es idempotente: marcar una ya
// leída deja la marca en true sin error. Solo el destinatario puede marcarla.
func (uc *UseCase) MarkRead(notificationID, userID string) error {
	n, err := uc.notifRepo.GetByID(notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	if n.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.notifRepo.MarkRead(notificationID)
}

// ListUnread devuelve las notificaciones sin leer del usuario.
func (uc *UseCase) ListUnread(userID string, page dto.PageRequest) (*dto.UnreadNotificationsResponse, error) {
	page.DefaultPage()
	list, err := uc.notifRepo.ListUnread(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, toNotificationResponse(n))
	}
	return &dto.UnreadNotificationsResponse{Items: items, Count: len(items)}, nil
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Category:  n.Category,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		RefType:   n.RefType,
		RefID:     n.RefID,
		CreatedAt: n.CreatedAt,
	}
}
