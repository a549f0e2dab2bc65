package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. Solo existen altas y consultas: el libro es append-only.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListByPiece(pieceID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	List(pieceID, movType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	ListByRequest(requestID string) ([]*entity.Movement, error)
}
