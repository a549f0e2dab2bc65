package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN       = "IN"       // entrada
	MovementTypeOUT      = "OUT"      // salida
	MovementTypeTRANSFER = "TRANSFER" // reubicación sin cambio de cantidad
)

// Movement representa una entrada inmutable del libro de movimientos.
// No existen operaciones de edición ni borrado: las correcciones se hacen
// con movimientos compensatorios.
type Movement struct {
	ID           string
	PieceID      string
	Type         string // IN, OUT, TRANSFER
	Quantity     int64  // siempre positiva; el signo lo determina el tipo
	FromLocation string
	ToLocation   string
	CreatedBy    string // UserID que ejecuta el movimiento
	ProjectID    string
	RequestID    string // solicitud que originó el movimiento (vacío si es manual)
	Notes        string
	CreatedAt    time.Time
}
