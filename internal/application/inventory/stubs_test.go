package inventory_test

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para probar los casos de uso sin PostgreSQL.
// Devuelven copias en las lecturas y guardan copias en las escrituras, igual
// que un repositorio real.
// ──────────────────────────────────────────────────────────────────────────────

func clonePiece(p *entity.Piece) *entity.Piece {
	cp := *p
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
	for _, existing := range r.byID {
		if existing.SerialNumber == p.SerialNumber {
			return domain.ErrDuplicate
		}
	}
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
	var list []*entity.Piece
	for _, p := range r.byID {
		if onlyActive && !p.Active {
			continue
		}
		list = append(list, clonePiece(p))
	}
	return list, nil
}

func (r *memPieceRepo) ListLowStock() ([]*entity.Piece, error) {
	var list []*entity.Piece
	for _, p := range r.byID {
		if p.Active && p.Quantity <= p.MinStock {
			list = append(list, clonePiece(p))
		}
	}
	return list, nil
}

type memMovementRepo struct {
	movements []*entity.Movement
}

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) ListByPiece(pieceID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range r.movements {
		if m.PieceID == pieceID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (r *memMovementRepo) List(pieceID, movType string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range r.movements {
		if pieceID != "" && m.PieceID != pieceID {
			continue
		}
		if movType != "" && m.Type != movType {
			continue
		}
		list = append(list, m)
	}
	return list, nil
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

func (r *memNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memNotificationRepo) MarkRead(id string) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
		}
	}
	return nil
}

func (r *memNotificationRepo) ListUnread(userID string, limit, offset int) ([]*entity.Notification, error) {
	var list []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			list = append(list, n)
		}
	}
	return list, nil
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

// memRequestRepo solo implementa lo que PieceUseCase consulta.
type memRequestRepo struct {
	activeByPiece map[string]int
}

func (r *memRequestRepo) Create(request *entity.Request) error            { return nil }
func (r *memRequestRepo) GetByID(id string) (*entity.Request, error)      { return nil, nil }
func (r *memRequestRepo) GetForUpdate(id string) (*entity.Request, error) { return nil, nil }
func (r *memRequestRepo) Update(request *entity.Request) error            { return nil }
func (r *memRequestRepo) List(status, requesterID string, limit, offset int) ([]*entity.Request, error) {
	return nil, nil
}
func (r *memRequestRepo) CountActiveByPiece(pieceID string) (int, error) {
	return r.activeByPiece[pieceID], nil
}

// stubTxRunner ejecuta la función directamente con los repos en memoria.
type stubTxRunner struct {
	pieces *memPieceRepo
	movs   *memMovementRepo
	notifs *memNotificationRepo
}

func (s *stubTxRunner) Run(ctx context.Context, fn func(
	pieceRepo repository.PieceRepository,
	movRepo repository.MovementRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	return fn(s.pieces, s.movs, s.notifs)
}
