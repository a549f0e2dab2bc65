package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// PieceRepository define el puerto de persistencia para Piece (DIP).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar las
// actualizaciones de cantidad por pieza.
type PieceRepository interface {
	Create(piece *entity.Piece) error
	GetByID(id string) (*entity.Piece, error)
	GetBySerial(serialNumber string) (*entity.Piece, error)
	GetForUpdate(id string) (*entity.Piece, error)
	Update(piece *entity.Piece) error
	List(onlyActive bool, limit, offset int) ([]*entity.Piece, error)
	// ListLowStock devuelve piezas activas con cantidad <= stock mínimo.
	ListLowStock() ([]*entity.Piece, error)
}
