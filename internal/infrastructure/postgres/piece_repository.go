package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.PieceRepository = (*PieceRepo)(nil)

const pieceColumns = `id, serial_number, name, description, category, location,
	quantity, min_stock, unit_price, unit_measure, supplier_id, active, created_at, updated_at`

// PieceRepo implementación de PieceRepository sobre PostgreSQL (usable con pool o tx).
type PieceRepo struct {
	q Querier
}

// NewPieceRepository construye el adaptador de piezas. Pasar pool o tx (Querier).
func NewPieceRepository(q Querier) *PieceRepo {
	return &PieceRepo{q: q}
}

// Create persiste una pieza nueva. Devuelve ErrDuplicate si el serial ya existe.
func (r *PieceRepo) Create(piece *entity.Piece) error {
	query := `
		INSERT INTO pieces (id, serial_number, name, description, category, location,
			quantity, min_stock, unit_price, unit_measure, supplier_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		piece.ID, piece.SerialNumber, piece.Name, piece.Description, piece.Category,
		piece.Location, piece.Quantity, piece.MinStock, piece.UnitPrice,
		piece.UnitMeasure, piece.SupplierID, piece.Active, piece.CreatedAt, piece.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create piece: %w", err)
	}
	return nil
}

// GetByID obtiene una pieza por ID. Devuelve nil si no existe.
func (r *PieceRepo) GetByID(id string) (*entity.Piece, error) {
	query := `SELECT ` + pieceColumns + ` FROM pieces WHERE id = $1`
	return r.scanOne(query, id)
}

// GetBySerial obtiene una pieza por número de serie. Devuelve nil si no existe.
func (r *PieceRepo) GetBySerial(serialNumber string) (*entity.Piece, error) {
	query := `SELECT ` + pieceColumns + ` FROM pieces WHERE serial_number = $1`
	return r.scanOne(query, serialNumber)
}

// GetForUpdate obtiene la pieza y bloquea la fila (SELECT FOR UPDATE) para
// serializar las actualizaciones de cantidad por pieza.
func (r *PieceRepo) GetForUpdate(id string) (*entity.Piece, error) {
	query := `SELECT ` + pieceColumns + ` FROM pieces WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// Update actualiza los campos mutables de la pieza.
func (r *PieceRepo) Update(piece *entity.Piece) error {
	query := `
		UPDATE pieces SET name = $2, description = $3, category = $4, location = $5,
			quantity = $6, min_stock = $7, unit_price = $8, unit_measure = $9,
			supplier_id = $10, active = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		piece.ID, piece.Name, piece.Description, piece.Category, piece.Location,
		piece.Quantity, piece.MinStock, piece.UnitPrice, piece.UnitMeasure,
		piece.SupplierID, piece.Active, piece.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update piece: %w", err)
	}
	return nil
}

// List lista piezas con paginación; onlyActive excluye las desactivadas.
func (r *PieceRepo) List(onlyActive bool, limit, offset int) ([]*entity.Piece, error) {
	query := `SELECT ` + pieceColumns + ` FROM pieces`
	if onlyActive {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pieces: %w", err)
	}
	defer rows.Close()
	return scanPieces(rows)
}

// ListLowStock devuelve piezas activas con cantidad <= stock mínimo (LOW o CRITICAL).
func (r *PieceRepo) ListLowStock() ([]*entity.Piece, error) {
	query := `SELECT ` + pieceColumns + `
		FROM pieces
		WHERE active = true AND quantity <= min_stock
		ORDER BY quantity = 0 DESC, min_stock - quantity DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanPieces(rows)
}

func (r *PieceRepo) scanOne(query string, args ...any) (*entity.Piece, error) {
	var p entity.Piece
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.SerialNumber, &p.Name, &p.Description, &p.Category, &p.Location,
		&p.Quantity, &p.MinStock, &p.UnitPrice, &p.UnitMeasure, &p.SupplierID,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get piece: %w", err)
	}
	return &p, nil
}

func scanPieces(rows pgx.Rows) ([]*entity.Piece, error) {
	var list []*entity.Piece
	for rows.Next() {
		var p entity.Piece
		if err := rows.Scan(
			&p.ID, &p.SerialNumber, &p.Name, &p.Description, &p.Category, &p.Location,
			&p.Quantity, &p.MinStock, &p.UnitPrice, &p.UnitMeasure, &p.SupplierID,
			&p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan piece: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
