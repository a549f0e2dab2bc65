package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

func newPieceUC(requests *memRequestRepo, pieces ...*entity.Piece) (*inventory.PieceUseCase, *memPieceRepo) {
	repo := newMemPieceRepo(pieces...)
	if requests == nil {
		requests = &memRequestRepo{activeByPiece: map[string]int{}}
	}
	return inventory.NewPieceUseCase(repo, requests), repo
}

func TestPieceCreate_AltaValida(t *testing.T) {
	uc, repo := newPieceUC(nil)

	resp, err := uc.Create(dto.CreatePieceRequest{
		SerialNumber: "RTR-0001",
		Name:         "Rodamiento 6204",
		Category:     "rodamientos",
		Quantity:     10,
		MinStock:     5,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Active, "toda pieza nueva nace activa")
	assert.Equal(t, entity.StockStatusOK, resp.Status)
	assert.NotEmpty(t, resp.ID)

	stored, _ := repo.GetBySerial("RTR-0001")
	require.NotNil(t, stored, "la pieza debe quedar persistida")
}

func TestPieceCreate_Validaciones(t *testing.T) {
	uc, _ := newPieceUC(nil)

	cases := []struct {
		name string
		in   dto.CreatePieceRequest
	}{
		{"sin nombre", dto.CreatePieceRequest{SerialNumber: "S-1"}},
		{"sin serial", dto.CreatePieceRequest{Name: "Pieza"}},
		{"cantidad negativa", dto.CreatePieceRequest{SerialNumber: "S-1", Name: "Pieza", Quantity: -1}},
		{"minimo negativo", dto.CreatePieceRequest{SerialNumber: "S-1", Name: "Pieza", MinStock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPieceCreate_SerialDuplicado(t *testing.T) {
	uc, _ := newPieceUC(nil)

	_, err := uc.Create(dto.CreatePieceRequest{SerialNumber: "S-1", Name: "Pieza A"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreatePieceRequest{SerialNumber: "S-1", Name: "Pieza B"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el serial es único")
}

// failingSerialRepo simula un fallo de infraestructura en la consulta por serial.
type failingSerialRepo struct {
	*memPieceRepo
	err error
}

func (r *failingSerialRepo) GetBySerial(serialNumber string) (*entity.Piece, error) {
	return nil, r.err
}

func TestPieceCreate_ErrorAlConsultarSerialSePropaga(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	repo := &failingSerialRepo{memPieceRepo: newMemPieceRepo(), err: repoErr}
	uc := inventory.NewPieceUseCase(repo, &memRequestRepo{activeByPiece: map[string]int{}})

	_, err := uc.Create(dto.CreatePieceRequest{SerialNumber: "S-1", Name: "Pieza"})
	assert.ErrorIs(t, err, repoErr, "un fallo de consulta no se interpreta como serial libre ni como duplicado")
}

func TestPieceGetStockStatus(t *testing.T) {
	uc, _ := newPieceUC(nil, testPiece("p1", 3, 5))

	status, err := uc.GetStockStatus("p1")
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusLow, status.Status)
	assert.Equal(t, int64(3), status.Quantity)

	_, err = uc.GetStockStatus("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPieceDeactivate_SuaveEIdempotente(t *testing.T) {
	uc, repo := newPieceUC(nil, testPiece("p1", 3, 5))

	require.NoError(t, uc.Deactivate("p1"))
	stored, _ := repo.GetByID("p1")
	assert.False(t, stored.Active, "la desactivación es suave, la pieza sigue existiendo")

	// Repetir la desactivación no es error
	assert.NoError(t, uc.Deactivate("p1"))
}

func TestPieceDeactivate_BloqueadaPorSolicitudesActivas(t *testing.T) {
	requests := &memRequestRepo{activeByPiece: map[string]int{"p1": 2}}
	uc, repo := newPieceUC(requests, testPiece("p1", 3, 5))

	err := uc.Deactivate("p1")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"no se desactiva una pieza referenciada por solicitudes PENDING/APPROVED")

	stored, _ := repo.GetByID("p1")
	assert.True(t, stored.Active)
}

func TestPieceDeactivate_NoEncontrada(t *testing.T) {
	uc, _ := newPieceUC(nil)
	assert.ErrorIs(t, uc.Deactivate("no-existe"), domain.ErrNotFound)
}
