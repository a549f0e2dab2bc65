package dto

import "time"

// NotificationResponse representación de una notificación.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	RefType   string    `json:"ref_type,omitempty"`
	RefID     string    `json:"ref_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadNotificationsResponse listado de notificaciones sin leer de un usuario.
// Count cuenta los elementos devueltos en esta página.
type UnreadNotificationsResponse struct {
	Items []NotificationResponse `json:"items"`
	Count int                    `json:"count"`
}
