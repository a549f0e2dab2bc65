package repository

// SubscriptionRepository resuelve qué usuarios reciben alertas de stock por
// categoría de pieza. El alta/baja de suscripciones pertenece a la capa de
// administración; el emisor de notificaciones solo consulta.
type SubscriptionRepository interface {
	Subscribe(userID, category string) error
	SubscribersByCategory(category string) ([]string, error)
}
