package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación de SubscriptionRepository sobre PostgreSQL.
// Tabla alert_subscriptions: (user_id, category) con PK compuesta.
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador de suscripciones.
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// Subscribe suscribe al usuario a las alertas de una categoría de pieza.
// Repetir la suscripción no es error.
func (r *SubscriptionRepo) Subscribe(userID, category string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO alert_subscriptions (user_id, category)
		 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, category,
	)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	return nil
}

// SubscribersByCategory devuelve los usuarios activos suscritos a la categoría.
func (r *SubscriptionRepo) SubscribersByCategory(category string) ([]string, error) {
	query := `
		SELECT s.user_id
		FROM alert_subscriptions s
		JOIN users u ON u.id = s.user_id
		WHERE s.category = $1 AND u.status = 'active'`
	rows, err := r.q.Query(context.Background(), query, category)
	if err != nil {
		return nil, fmt.Errorf("subscribers by category: %w", err)
	}
	defer rows.Close()
	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		users = append(users, id)
	}
	return users, rows.Err()
}
