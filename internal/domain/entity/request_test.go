package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de solicitudes:
// PENDING → APPROVED | REJECTED | CANCELLED; APPROVED → FULFILLED | CANCELLED.
// REJECTED, FULFILLED y CANCELLED son terminales.
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_MatrizCompleta(t *testing.T) {
	all := []string{
		entity.RequestStatusPending,
		entity.RequestStatusApproved,
		entity.RequestStatusRejected,
		entity.RequestStatusFulfilled,
		entity.RequestStatusCancelled,
	}
	allowed := map[[2]string]bool{
		{entity.RequestStatusPending, entity.RequestStatusApproved}:   true,
		{entity.RequestStatusPending, entity.RequestStatusRejected}:   true,
		{entity.RequestStatusPending, entity.RequestStatusCancelled}:  true,
		{entity.RequestStatusApproved, entity.RequestStatusFulfilled}: true,
		{entity.RequestStatusApproved, entity.RequestStatusCancelled}: true,
	}
	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]string{from, to}]
			assert.Equal(t, want, entity.CanTransition(from, to),
				"transición %s → %s", from, to)
		}
	}
}

func TestCanTransition_SaltoDirectoAFulfilledProhibido(t *testing.T) {
	// El surtido exige aprobación previa: PENDING nunca llega directo a FULFILLED.
	assert.False(t, entity.CanTransition(entity.RequestStatusPending, entity.RequestStatusFulfilled))
}

func TestIsTerminalStatus(t *testing.T) {
	assert.False(t, entity.IsTerminalStatus(entity.RequestStatusPending))
	assert.False(t, entity.IsTerminalStatus(entity.RequestStatusApproved))
	assert.True(t, entity.IsTerminalStatus(entity.RequestStatusRejected))
	assert.True(t, entity.IsTerminalStatus(entity.RequestStatusFulfilled))
	assert.True(t, entity.IsTerminalStatus(entity.RequestStatusCancelled))
}

func TestIsValidRequestStatus(t *testing.T) {
	assert.True(t, entity.IsValidRequestStatus(entity.RequestStatusPending))
	assert.True(t, entity.IsValidRequestStatus(entity.RequestStatusCancelled))
	assert.False(t, entity.IsValidRequestStatus("ARCHIVED"))
	assert.False(t, entity.IsValidRequestStatus(""))
	assert.False(t, entity.IsValidRequestStatus("pending"), "los estados distinguen mayúsculas")
}

func TestIsValidPriority(t *testing.T) {
	assert.True(t, entity.IsValidPriority(entity.PriorityLow))
	assert.True(t, entity.IsValidPriority(entity.PriorityMedium))
	assert.True(t, entity.IsValidPriority(entity.PriorityHigh))
	assert.False(t, entity.IsValidPriority("URGENT"))
}
