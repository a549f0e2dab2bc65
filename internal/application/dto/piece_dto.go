package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePieceRequest body para POST /api/pieces.
// Quantity y MinStock valen 0 si no se envían.
type CreatePieceRequest struct {
	SerialNumber string          `json:"serial_number"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	Location     string          `json:"location,omitempty"`
	Quantity     int64           `json:"quantity,omitempty"`
	MinStock     int64           `json:"min_stock,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price,omitempty"`
	UnitMeasure  string          `json:"unit_measure,omitempty"`
	SupplierID   string          `json:"supplier_id,omitempty"`
}

// PieceResponse representación de una pieza con su estado de stock derivado.
type PieceResponse struct {
	ID           string          `json:"id"`
	SerialNumber string          `json:"serial_number"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	Location     string          `json:"location,omitempty"`
	Quantity     int64           `json:"quantity"`
	MinStock     int64           `json:"min_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitMeasure  string          `json:"unit_measure,omitempty"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	Status       string          `json:"status"` // OK, LOW, CRITICAL
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PieceListResponse listado paginado de piezas.
type PieceListResponse struct {
	Items []PieceResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// StockStatusResponse respuesta de GET /api/pieces/:id/status.
type StockStatusResponse struct {
	PieceID  string `json:"piece_id"`
	Quantity int64  `json:"quantity"`
	MinStock int64  `json:"min_stock"`
	Status   string `json:"status"`
}
