package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// PieceUseCase registro de piezas: alta, consulta y desactivación suave.
// La cantidad solo cambia a través del libro de movimientos.
type PieceUseCase struct {
	pieceRepo   repository.PieceRepository
	requestRepo repository.RequestRepository
}

// NewPieceUseCase construye el caso de uso.
func NewPieceUseCase(pieceRepo repository.PieceRepository, requestRepo repository.RequestRepository) *PieceUseCase {
	return &PieceUseCase{pieceRepo: pieceRepo, requestRepo: requestRepo}
}

// Create da de alta una pieza. Nombre y número de serie son obligatorios;
// cantidad y mínimo valen 0 si no se envían. El serial debe ser único.
func (uc *PieceUseCase) Create(in dto.CreatePieceRequest) (*dto.PieceResponse, error) {
	if in.Name == "" || in.SerialNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.pieceRepo.GetBySerial(in.SerialNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	piece := &entity.Piece{
		ID:           uuid.New().String(),
		SerialNumber: in.SerialNumber,
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		Location:     in.Location,
		Quantity:     in.Quantity,
		MinStock:     in.MinStock,
		UnitPrice:    in.UnitPrice,
		UnitMeasure:  in.UnitMeasure,
		SupplierID:   in.SupplierID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.pieceRepo.Create(piece); err != nil {
		return nil, err
	}
	return toPieceResponse(piece), nil
}

// GetByID obtiene una pieza por ID.
func (uc *PieceUseCase) GetByID(id string) (*dto.PieceResponse, error) {
	piece, err := uc.pieceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, domain.ErrNotFound
	}
	return toPieceResponse(piece), nil
}

// List lista piezas con paginación. onlyActive excluye las desactivadas.
func (uc *PieceUseCase) List(onlyActive bool, page dto.PageRequest) (*dto.PieceListResponse, error) {
	page.DefaultPage()
	list, err := uc.pieceRepo.List(onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PieceResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPieceResponse(p))
	}
	return &dto.PieceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetStockStatus devuelve la clasificación derivada OK/LOW/CRITICAL de la pieza.
func (uc *PieceUseCase) GetStockStatus(id string) (*dto.StockStatusResponse, error) {
	piece, err := uc.pieceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.StockStatusResponse{
		PieceID:  piece.ID,
		Quantity: piece.Quantity,
		MinStock: piece.MinStock,
		Status:   piece.StockStatus(),
	}, nil
}

// Deactivate desactiva una pieza (borrado suave). Se rechaza con ErrConflict
// mientras existan solicitudes PENDING/APPROVED que la referencien; el
// historial de movimientos se conserva siempre.
func (uc *PieceUseCase) Deactivate(id string) error {
	piece, err := uc.pieceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if piece == nil {
		return domain.ErrNotFound
	}
	if !piece.Active {
		return nil // ya desactivada
	}
	active, err := uc.requestRepo.CountActiveByPiece(id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrConflict
	}
	piece.Active = false
	piece.UpdatedAt = time.Now()
	return uc.pieceRepo.Update(piece)
}

func toPieceResponse(p *entity.Piece) *dto.PieceResponse {
	return &dto.PieceResponse{
		ID:           p.ID,
		SerialNumber: p.SerialNumber,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Location:     p.Location,
		Quantity:     p.Quantity,
		MinStock:     p.MinStock,
		UnitPrice:    p.UnitPrice,
		UnitMeasure:  p.UnitMeasure,
		SupplierID:   p.SupplierID,
		Status:       p.StockStatus(),
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
