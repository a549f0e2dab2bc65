package workflow_test

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Repositorios en memoria para probar el flujo de solicitudes sin PostgreSQL.

func clonePiece(p *entity.Piece) *entity.Piece {
	cp := *p
	return &cp
}

func cloneRequest(r *entity.Request) *entity.Request {
	cp := *r
	cp.Items = append([]entity.RequestItem(nil), r.Items...)
	return &cp
}

type memPieceRepo struct {
	byID map[string]*entity.Piece
}

func newMemPieceRepo(pieces ...*entity.Piece) *memPieceRepo {
	r := &memPieceRepo{byID: make(map[string]*entity.Piece)}
	for _, p := range pieces {
		r.byID[p.ID] = clonePiece(p)
	}
	return r
}

func (r *memPieceRepo) Create(p *entity.Piece) error {
	r.byID[p.ID] = clonePiece(p)
	return nil
}

func (r *memPieceRepo) GetByID(id string) (*entity.Piece, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return clonePiece(p), nil
}

func (r *memPieceRepo) GetBySerial(serialNumber string) (*entity.Piece, error) {
	for _, p := range r.byID {
		if p.SerialNumber == serialNumber {
			return clonePiece(p), nil
		}
	}
	return nil, nil
}

func (r *memPieceRepo) GetForUpdate(id string) (*entity.Piece, error) {
	return r.GetByID(id)
}

func (r *memPieceRepo) Update(p *entity.Piece) error {
	r.byID[p.ID] = clonePiece(p)
	return nil
}

func (r *memPieceRepo) List(onlyActive bool, limit, offset int) ([]*entity.Piece, error) {
	return nil, nil
}

func (r *memPieceRepo) ListLowStock() ([]*entity.Piece, error) {
	return nil, nil
}

type memMovementRepo struct {
	movements []*entity.Movement
}

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) { return nil, nil }

func (r *memMovementRepo) ListByPiece(pieceID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return nil, nil
}

func (r *memMovementRepo) List(pieceID, movType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return nil, nil
}

func (r *memMovementRepo) ListByRequest(requestID string) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range r.movements {
		if m.RequestID == requestID {
			list = append(list, m)
		}
	}
	return list, nil
}

type memNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *memNotificationRepo) Create(n *entity.Notification) error {
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *memNotificationRepo) GetByID(id string) (*entity.Notification, error) { return nil, nil }
func (r *memNotificationRepo) MarkRead(id string) error                        { return nil }

func (r *memNotificationRepo) ListUnread(userID string, limit, offset int) ([]*entity.Notification, error) {
	return nil, nil
}

func (r *memNotificationRepo) ExistsByEvent(eventID, userID string) (bool, error) {
	for _, n := range r.notifications {
		if n.EventID == eventID && n.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type memSubscriptionRepo struct {
	byCategory map[string][]string
}

func newMemSubscriptionRepo() *memSubscriptionRepo {
	return &memSubscriptionRepo{byCategory: make(map[string][]string)}
}

func (r *memSubscriptionRepo) Subscribe(userID, category string) error {
	r.byCategory[category] = append(r.byCategory[category], userID)
	return nil
}

func (r *memSubscriptionRepo) SubscribersByCategory(category string) ([]string, error) {
	return r.byCategory[category], nil
}

type memRequestRepo struct {
	byID map[string]*entity.Request
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{byID: make(map[string]*entity.Request)}
}

func (r *memRequestRepo) Create(request *entity.Request) error {
	r.byID[request.ID] = cloneRequest(request)
	return nil
}

func (r *memRequestRepo) GetByID(id string) (*entity.Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneRequest(req), nil
}

func (r *memRequestRepo) GetForUpdate(id string) (*entity.Request, error) {
	return r.GetByID(id)
}

func (r *memRequestRepo) Update(request *entity.Request) error {
	cp := cloneRequest(request)
	if stored, ok := r.byID[request.ID]; ok {
		// Las líneas son inmutables tras el alta
		cp.Items = stored.Items
	}
	r.byID[request.ID] = cp
	return nil
}

func (r *memRequestRepo) List(status, requesterID string, limit, offset int) ([]*entity.Request, error) {
	var list []*entity.Request
	for _, req := range r.byID {
		if status != "" && req.Status != status {
			continue
		}
		if requesterID != "" && req.RequesterID != requesterID {
			continue
		}
		list = append(list, cloneRequest(req))
	}
	return list, nil
}

func (r *memRequestRepo) CountActiveByPiece(pieceID string) (int, error) {
	count := 0
	for _, req := range r.byID {
		if req.Status != entity.RequestStatusPending && req.Status != entity.RequestStatusApproved {
			continue
		}
		for _, it := range req.Items {
			if it.PieceID == pieceID {
				count++
				break
			}
		}
	}
	return count, nil
}

// stubTxRunner ejecuta las funciones directamente con los repos en memoria.
// Implementa tanto la variante de movimientos como la de solicitudes.
type stubTxRunner struct {
	pieces   *memPieceRepo
	movs     *memMovementRepo
	notifs   *memNotificationRepo
	requests *memRequestRepo
}

func (s *stubTxRunner) Run(ctx context.Context, fn func(
	pieceRepo repository.PieceRepository,
	movRepo repository.MovementRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	return fn(s.pieces, s.movs, s.notifs)
}

func (s *stubTxRunner) RunRequest(ctx context.Context, fn func(
	pieceRepo repository.PieceRepository,
	movRepo repository.MovementRepository,
	notifRepo repository.NotificationRepository,
	requestRepo repository.RequestRepository,
) error) error {
	return fn(s.pieces, s.movs, s.notifs, s.requests)
}
