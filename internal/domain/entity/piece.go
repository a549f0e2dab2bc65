package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados. Nunca se almacenan: se calculan siempre
// a partir de cantidad actual y stock mínimo.
const (
	StockStatusOK       = "OK"
	StockStatusLow      = "LOW"
	StockStatusCritical = "CRITICAL"
)

// Piece representa una pieza física rastreada en el almacén.
// Quantity solo se modifica a través de movimientos (nunca por edición directa);
// Active permite desactivación suave en lugar de borrado.
type Piece struct {
	ID           string
	SerialNumber string // único, obligatorio
	Name         string
	Description  string
	Category     string // usado para enrutar alertas de stock bajo
	Location     string
	Quantity     int64 // nunca negativa
	MinStock     int64
	UnitPrice    decimal.Decimal
	UnitMeasure  string
	SupplierID   string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockStatus clasifica la escasez de la pieza: OK, LOW o CRITICAL.
func (p *Piece) StockStatus() string {
	return StockStatusFor(p.Quantity, p.MinStock)
}

// StockStatusFor devuelve CRITICAL si la cantidad es 0, LOW si está entre 1 y
// el mínimo (inclusive), OK en cualquier otro caso.
func StockStatusFor(quantity, minStock int64) string {
	switch {
	case quantity == 0:
		return StockStatusCritical
	case quantity <= minStock:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}
