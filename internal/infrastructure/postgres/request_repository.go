package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

const requestColumns = `id, requester_id, status, priority, project_id, comments, created_at, updated_at`

// RequestRepo implementación de RequestRepository sobre PostgreSQL (usable con
// pool o tx). Las líneas viven en request_items y se cargan con la solicitud.
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

// Create persiste la solicitud y sus líneas.
func (r *RequestRepo) Create(request *entity.Request) error {
	ctx := context.Background()
	query := `
		INSERT INTO requests (id, requester_id, status, priority, project_id, comments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		request.ID, request.RequesterID, request.Status, request.Priority,
		request.ProjectID, request.Comments, request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for i, it := range request.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO request_items (request_id, position, piece_id, quantity) VALUES ($1, $2, $3, $4)`,
			request.ID, i, it.PieceID, it.Quantity,
		)
		if err != nil {
			return fmt.Errorf("create request item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la solicitud con sus líneas. Devuelve nil si no existe.
func (r *RequestRepo) GetByID(id string) (*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene la solicitud y bloquea su fila para la transición.
func (r *RequestRepo) GetForUpdate(id string) (*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// Update actualiza estado y metadatos; las líneas son inmutables tras el alta.
func (r *RequestRepo) Update(request *entity.Request) error {
	query := `
		UPDATE requests SET status = $2, priority = $3, comments = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.Status, request.Priority, request.Comments, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return nil
}

// List lista solicitudes con filtros opcionales de estado y solicitante.
func (r *RequestRepo) List(status, requesterID string, limit, offset int) ([]*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE 1=1`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	if requesterID != "" {
		query += fmt.Sprintf(" AND requester_id = $%d", pos)
		args = append(args, requesterID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.Request
	for rows.Next() {
		var req entity.Request
		if err := rows.Scan(
			&req.ID, &req.RequesterID, &req.Status, &req.Priority,
			&req.ProjectID, &req.Comments, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		list = append(list, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, req := range list {
		items, err := r.loadItems(req.ID)
		if err != nil {
			return nil, err
		}
		req.Items = items
	}
	return list, nil
}

// CountActiveByPiece cuenta solicitudes PENDING/APPROVED que referencian la pieza.
func (r *RequestRepo) CountActiveByPiece(pieceID string) (int, error) {
	query := `
		SELECT count(*)
		FROM requests r
		JOIN request_items ri ON ri.request_id = r.id
		WHERE ri.piece_id = $1 AND r.status IN ($2, $3)`
	var count int
	err := r.q.QueryRow(context.Background(), query,
		pieceID, entity.RequestStatusPending, entity.RequestStatusApproved,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active requests by piece: %w", err)
	}
	return count, nil
}

func (r *RequestRepo) scanOne(query string, args ...any) (*entity.Request, error) {
	var req entity.Request
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&req.ID, &req.RequesterID, &req.Status, &req.Priority,
		&req.ProjectID, &req.Comments, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	items, err := r.loadItems(req.ID)
	if err != nil {
		return nil, err
	}
	req.Items = items
	return &req, nil
}

func (r *RequestRepo) loadItems(requestID string) ([]entity.RequestItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT piece_id, quantity FROM request_items WHERE request_id = $1 ORDER BY position`,
		requestID,
	)
	if err != nil {
		return nil, fmt.Errorf("load request items: %w", err)
	}
	defer rows.Close()
	var items []entity.RequestItem
	for rows.Next() {
		var it entity.RequestItem
		if err := rows.Scan(&it.PieceID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan request item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
