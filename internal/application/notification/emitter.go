package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Emitter deriva notificaciones a partir de cambios de estado del dominio.
// No posee piezas, movimientos ni solicitudes: solo los observa. Las
// emisiones son idempotentes por evento disparador: antes de crear cada
// notificación se consulta si ya existe una para (EventID, usuario).
type Emitter struct {
	subsRepo repository.SubscriptionRepository
}

// NewEmitter construye el emisor con el resolutor de suscripciones.
func NewEmitter(subsRepo repository.SubscriptionRepository) *Emitter {
	return &Emitter{subsRepo: subsRepo}
}

// EmitLowStock emite una notificación LOW_STOCK a los usuarios suscritos a la
// categoría de la pieza cuando el nuevo estado es LOW o CRITICAL y difiere del
// estado inmediatamente anterior al movimiento. notifRepo debe venir atado a
// la transacción del movimiento: si la mutación falla no se emite nada.
func (e *Emitter) EmitLowStock(notifRepo repository.NotificationRepository, piece *entity.Piece, prevStatus, eventID string) error {
	newStatus := piece.StockStatus()
	if newStatus == entity.StockStatusOK || newStatus == prevStatus {
		return nil
	}

	subscribers, err := e.subsRepo.SubscribersByCategory(piece.Category)
	if err != nil {
		return fmt.Errorf("resolver suscriptores: %w", err)
	}

	title := "Stock bajo"
	if newStatus == entity.StockStatusCritical {
		title = "Stock agotado"
	}
	message := fmt.Sprintf(
		"La pieza %s (serie %s) quedó en %d unidades; el mínimo es %d.",
		piece.Name, piece.SerialNumber, piece.Quantity, piece.MinStock,
	)

	now := time.Now()
	for _, userID := range subscribers {
		exists, err := notifRepo.ExistsByEvent(eventID, userID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		n := &entity.Notification{
			ID:        uuid.New().String(),
			UserID:    userID,
			Category:  entity.NotificationLowStock,
			Title:     title,
			Message:   message,
			RefType:   entity.NotificationRefPiece,
			RefID:     piece.ID,
			EventID:   eventID,
			CreatedAt: now,
		}
		if err := notifRepo.Create(n); err != nil {
			return err
		}
	}
	return nil
}

// EmitRequestResolved notifica al solicitante cuando su solicitud llega a
// FULFILLED o REJECTED. Para otros estados no emite nada.
func (e *Emitter) EmitRequestResolved(notifRepo repository.NotificationRepository, request *entity.Request, eventID string) error {
	var category, title, message string
	switch request.Status {
	case entity.RequestStatusFulfilled:
		category = entity.NotificationRequestReady
		title = "Solicitud lista"
		message = fmt.Sprintf("Tu solicitud %s fue surtida; las piezas están listas para retiro.", request.ID)
	case entity.RequestStatusRejected:
		category = entity.NotificationRequestRejected
		title = "Solicitud rechazada"
		message = fmt.Sprintf("Tu solicitud %s fue rechazada.", request.ID)
	default:
		return nil
	}

	exists, err := notifRepo.ExistsByEvent(eventID, request.RequesterID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    request.RequesterID,
		Category:  category,
		Title:     title,
		Message:   message,
		RefType:   entity.NotificationRefRequest,
		RefID:     request.ID,
		EventID:   eventID,
		CreatedAt: time.Now(),
	}
	return notifRepo.Create(n)
}
