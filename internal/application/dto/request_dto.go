package dto

import "time"

// RequestItemDTO línea de solicitud.
type RequestItemDTO struct {
	PieceID  string `json:"piece_id"`
	Quantity int64  `json:"quantity"`
}

// CreateRequestRequest body para POST /api/requests.
type CreateRequestRequest struct {
	Items     []RequestItemDTO `json:"items"`
	Priority  string           `json:"priority,omitempty"` // LOW, MEDIUM (defecto), HIGH
	ProjectID string           `json:"project_id,omitempty"`
	Comments  string           `json:"comments,omitempty"`
}

// TransitionRequest body para POST /api/requests/:id/transition.
type TransitionRequest struct {
	TargetStatus string `json:"target_status"`
}

// RequestResponse representación de una solicitud.
type RequestResponse struct {
	ID          string           `json:"id"`
	RequesterID string           `json:"requester_id"`
	Items       []RequestItemDTO `json:"items"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	ProjectID   string           `json:"project_id,omitempty"`
	Comments    string           `json:"comments,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// RequestListResponse listado paginado de solicitudes.
type RequestListResponse struct {
	Items []RequestResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
