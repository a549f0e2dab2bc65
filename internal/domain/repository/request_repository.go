package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// RequestRepository define el puerto de persistencia para solicitudes internas.
// Las solicitudes nunca se borran; solo cambia su estado vía Update.
type RequestRepository interface {
	Create(request *entity.Request) error
	GetByID(id string) (*entity.Request, error)
	// GetForUpdate bloquea la fila de la solicitud para la transición de estado.
	GetForUpdate(id string) (*entity.Request, error)
	Update(request *entity.Request) error
	List(status, requesterID string, limit, offset int) ([]*entity.Request, error)
	// CountActiveByPiece cuenta solicitudes PENDING/APPROVED que referencian la pieza.
	CountActiveByPiece(pieceID string) (int, error)
}
