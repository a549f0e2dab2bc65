package entity

import "time"

// Estados de una solicitud interna.
const (
	RequestStatusPending   = "PENDING"
	RequestStatusApproved  = "APPROVED"
	RequestStatusRejected  = "REJECTED"
	RequestStatusFulfilled = "FULFILLED"
	RequestStatusCancelled = "CANCELLED"
)

// Prioridades de una solicitud.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// requestTransitions define la máquina de estados:
// PENDING → APPROVED | REJECTED | CANCELLED; APPROVED → FULFILLED | CANCELLED.
// REJECTED, FULFILLED y CANCELLED son terminales.
var requestTransitions = map[string][]string{
	RequestStatusPending:  {RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled},
	RequestStatusApproved: {RequestStatusFulfilled, RequestStatusCancelled},
}

// RequestItem es una línea de la solicitud: referencia a pieza y cantidad pedida.
type RequestItem struct {
	PieceID  string
	Quantity int64 // > 0
}

// Request representa una solicitud interna de asignación de piezas.
// Se conserva indefinidamente para auditoría; nunca se borra.
type Request struct {
	ID          string
	RequesterID string
	Items       []RequestItem // no vacía
	Status      string
	Priority    string
	ProjectID   string
	Comments    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanTransition indica si el cambio de estado from → to está permitido.
func CanTransition(from, to string) bool {
	for _, allowed := range requestTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus indica si el estado no admite más transiciones.
func IsTerminalStatus(status string) bool {
	return len(requestTransitions[status]) == 0
}

// IsValidRequestStatus valida que el estado pertenezca al conjunto conocido.
func IsValidRequestStatus(status string) bool {
	switch status {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected,
		RequestStatusFulfilled, RequestStatusCancelled:
		return true
	}
	return false
}

// IsValidPriority valida la prioridad.
func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
