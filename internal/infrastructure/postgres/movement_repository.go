package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, piece_id, type, quantity, from_location, to_location,
	created_by, project_id, request_id, notes, created_at`

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable
// con pool o tx). El libro es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create apila un movimiento en el libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, piece_id, type, quantity, from_location, to_location,
			created_by, project_id, request_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.PieceID, movement.Type, movement.Quantity,
		movement.FromLocation, movement.ToLocation, movement.CreatedBy,
		movement.ProjectID, movement.RequestID, movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.PieceID, &m.Type, &m.Quantity, &m.FromLocation, &m.ToLocation,
		&m.CreatedBy, &m.ProjectID, &m.RequestID, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByPiece lista el historial de una pieza en un rango de fechas opcional.
func (r *MovementRepo) ListByPiece(pieceID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.List(pieceID, "", from, to, limit, offset)
}

// List lista movimientos con filtros opcionales de pieza, tipo y fechas.
func (r *MovementRepo) List(pieceID, movType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE 1=1`
	args := []any{}
	pos := 1
	if pieceID != "" {
		query += fmt.Sprintf(" AND piece_id = $%d", pos)
		args = append(args, pieceID)
		pos++
	}
	if movType != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, movType)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByRequest lista los movimientos generados por el surtido de una solicitud.
func (r *MovementRepo) ListByRequest(requestID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE request_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list movements by request: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.PieceID, &m.Type, &m.Quantity, &m.FromLocation, &m.ToLocation,
			&m.CreatedBy, &m.ProjectID, &m.RequestID, &m.Notes, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
