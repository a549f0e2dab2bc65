package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, user_id, category, title, message, read, ref_type, ref_id, event_id, created_at`

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL
// (usable con pool o tx). Solo la columna read es mutable.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, category, title, message, read, ref_type, ref_id, event_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		notification.ID, notification.UserID, notification.Category,
		notification.Title, notification.Message, notification.Read,
		notification.RefType, notification.RefID, notification.EventID, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID. Devuelve nil si no existe.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.UserID, &n.Category, &n.Title, &n.Message, &n.Read,
		&n.RefType, &n.RefID, &n.EventID, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// MarkRead marca la notificación como leída. Idempotente: repetirlo no falla.
func (r *NotificationRepo) MarkRead(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// ListUnread lista las notificaciones sin leer de un usuario.
func (r *NotificationRepo) ListUnread(userID string, limit, offset int) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications WHERE user_id = $1 AND read = false
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Category, &n.Title, &n.Message, &n.Read,
			&n.RefType, &n.RefID, &n.EventID, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// ExistsByEvent indica si ya hay una notificación para (evento, usuario);
// soporta la idempotencia del emisor.
func (r *NotificationRepo) ExistsByEvent(eventID, userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM notifications WHERE event_id = $1 AND user_id = $2)`,
		eventID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists notification by event: %w", err)
	}
	return exists, nil
}
