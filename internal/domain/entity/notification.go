package entity

import "time"

// Categorías de notificación.
const (
	NotificationLowStock        = "LOW_STOCK"
	NotificationRequestReady    = "REQUEST_READY"
	NotificationRequestRejected = "REQUEST_REJECTED"
	NotificationSystem          = "SYSTEM"
)

// Tipos de entidad referenciada por una notificación.
const (
	NotificationRefPiece   = "piece"
	NotificationRefRequest = "request"
)

// Notification es una alerta generada por el sistema a partir de un evento de
// dominio. Tras crearse, solo la marca de lectura puede cambiar; EventID
// identifica el evento disparador y evita emisiones duplicadas.
type Notification struct {
	ID        string
	UserID    string // destinatario
	Category  string
	Title     string
	Message   string
	Read      bool
	RefType   string // piece, request
	RefID     string
	EventID   string // clave de deduplicación por evento disparador
	CreatedAt time.Time
}
