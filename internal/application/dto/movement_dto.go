package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/inventory/movements.
// Para IN: to_location opcional (nueva ubicación de la pieza).
// Para OUT: from_location opcional; si se envía debe coincidir con la actual.
// Para TRANSFER: from_location y to_location obligatorias y distintas.
type RecordMovementRequest struct {
	PieceID      string `json:"piece_id"`
	Type         string `json:"type"`
	Quantity     int64  `json:"quantity"`
	FromLocation string `json:"from_location,omitempty"`
	ToLocation   string `json:"to_location,omitempty"`
	ProjectID    string `json:"project_id,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// MovementResponse representación de un movimiento registrado.
type MovementResponse struct {
	ID           string    `json:"id"`
	PieceID      string    `json:"piece_id"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	FromLocation string    `json:"from_location,omitempty"`
	ToLocation   string    `json:"to_location,omitempty"`
	CreatedBy    string    `json:"created_by"`
	ProjectID    string    `json:"project_id,omitempty"`
	RequestID    string    `json:"request_id,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// AlertListResponse lista de reposición: piezas en LOW/CRITICAL.
type AlertListResponse struct {
	Total  int             `json:"total"`
	Alerts []StockAlertDTO `json:"alerts"`
}

// StockAlertDTO representa una pieza en estado LOW o CRITICAL con la cantidad
// sugerida de reposición y su costo estimado.
type StockAlertDTO struct {
	PieceID           string          `json:"piece_id"`
	SerialNumber      string          `json:"serial_number"`
	Name              string          `json:"name"`
	Location          string          `json:"location,omitempty"`
	Quantity          int64           `json:"quantity"`
	MinStock          int64           `json:"min_stock"`
	Status            string          `json:"status"`              // LOW o CRITICAL
	SuggestedOrderQty int64           `json:"suggested_order_qty"` // min_stock*2 - quantity
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`      // SuggestedOrderQty * unit_price
	Priority          int             `json:"priority"`            // 1 = más urgente
}
