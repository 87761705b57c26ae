package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
)

// OrderStore keeps submitted orders in memory for the life of the process.
// Orders are recorded exactly as submitted: items and total are the
// customer's snapshot and are not re-priced against the catalog.
type OrderStore struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Place records a new order with status pending and returns it.
func (s *OrderStore) Place(items []models.CartItem, total float64, addr models.ShippingAddress) models.Order {
	order := models.Order{
		ID:              uuid.NewString(),
		Items:           items,
		Total:           total,
		ShippingAddress: addr,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()
	return order
}

func (s *OrderStore) Get(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, apperr.NotFound("Order not found")
}

// List returns all orders, newest first.
func (s *OrderStore) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[len(s.orders)-1-i] = o
	}
	return out
}

// SetStatus overwrites the status field. Membership in the known status set
// is checked, transitions between statuses are not.
func (s *OrderStore) SetStatus(id, status string) (models.Order, error) {
	parsed, ok := models.ParseOrderStatus(status)
	if !ok {
		return models.Order{}, apperr.Validation("invalid order status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = parsed
			return s.orders[i], nil
		}
	}
	return models.Order{}, apperr.NotFound("Order not found")
}
