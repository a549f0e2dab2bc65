package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// StockAlertUseCase genera la lista de reposición: piezas en estado LOW o
// CRITICAL con la cantidad sugerida de pedido y su costo estimado.
type StockAlertUseCase struct {
	pieceRepo repository.PieceRepository
}

// NewStockAlertUseCase construye el caso de uso.
func NewStockAlertUseCase(pieceRepo repository.PieceRepository) *StockAlertUseCase {
	return &StockAlertUseCase{pieceRepo: pieceRepo}
}

// GenerateAlertList devuelve las piezas bajo el mínimo ordenadas por urgencia:
// primero CRITICAL, luego mayor déficit absoluto. La cantidad sugerida apunta
// al doble del mínimo (stock ideal) menos lo disponible.
func (uc *StockAlertUseCase) GenerateAlertList() ([]dto.StockAlertDTO, error) {
	pieces, err := uc.pieceRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	if len(pieces) == 0 {
		return []dto.StockAlertDTO{}, nil
	}

	alerts := make([]dto.StockAlertDTO, 0, len(pieces))
	for _, p := range pieces {
		status := p.StockStatus()
		if status == entity.StockStatusOK {
			continue
		}
		suggested := p.MinStock*2 - p.Quantity
		if suggested < 0 {
			suggested = 0
		}
		alerts = append(alerts, dto.StockAlertDTO{
			PieceID:           p.ID,
			SerialNumber:      p.SerialNumber,
			Name:              p.Name,
			Location:          p.Location,
			Quantity:          p.Quantity,
			MinStock:          p.MinStock,
			Status:            status,
			SuggestedOrderQty: suggested,
			EstimatedCost:     decimal.NewFromInt(suggested).Mul(p.UnitPrice).Round(2),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.Status != b.Status {
			return a.Status == entity.StockStatusCritical
		}
		return a.MinStock-a.Quantity > b.MinStock-b.Quantity
	})
	for i := range alerts {
		alerts[i].Priority = i + 1
	}
	return alerts, nil
}
