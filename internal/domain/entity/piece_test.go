package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación derivada de stock: CRITICAL si 0, LOW si 1..min, OK en el resto.
// El estado nunca se almacena; siempre se calcula.
// ──────────────────────────────────────────────────────────────────────────────

func TestStockStatusFor_Clasificacion(t *testing.T) {
	cases := []struct {
		name     string
		quantity int64
		minStock int64
		want     string
	}{
		{"cero es CRITICAL", 0, 5, entity.StockStatusCritical},
		{"cero con minimo cero sigue siendo CRITICAL", 0, 0, entity.StockStatusCritical},
		{"igual al minimo es LOW", 5, 5, entity.StockStatusLow},
		{"debajo del minimo es LOW", 3, 5, entity.StockStatusLow},
		{"una unidad sobre el minimo es OK", 6, 5, entity.StockStatusOK},
		{"muy por encima del minimo es OK", 100, 5, entity.StockStatusOK},
		{"una unidad con minimo cero es OK", 1, 0, entity.StockStatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.StockStatusFor(tc.quantity, tc.minStock))
		})
	}
}

func TestPieceStockStatus_UsaCantidadYMinimoActuales(t *testing.T) {
	p := &entity.Piece{Quantity: 10, MinStock: 5}
	assert.Equal(t, entity.StockStatusOK, p.StockStatus())

	p.Quantity = 4
	assert.Equal(t, entity.StockStatusLow, p.StockStatus())

	p.Quantity = 0
	assert.Equal(t, entity.StockStatusCritical, p.StockStatus())
}
