// Package store owns the catalog, order, admin and notification
// collections. All access goes through explicit methods on Store; there
// are no package-level globals. A single RWMutex guards the whole store,
// which matches the single-store, low-write-rate usage.
package store

import (
	"errors"
	"sync"

	"github.com/malakstore/souq/internal/models"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	mu            sync.RWMutex
	products      []models.Product
	orders        []models.Order // most recent first
	admins        []models.User
	notifications []models.Notification // most recent first
}

func New() *Store {
	return &Store{}
}

// --- catalog ---

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Product(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// UpsertProduct replaces the product with the same id, or appends it.
func (s *Store) UpsertProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return
		}
	}
	s.products = append(s.products, p)
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// --- orders ---

// PrependOrder inserts a new order at the head of the collection so
// listings come back most recent first.
func (s *Store) PrependOrder(o models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]models.Order{o}, s.orders...)
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersByUser returns the given user's orders, most recent first.
func (s *Store) OrdersByUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) Order(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// SetOrderStatus mutates the status of an existing order. Orders are never
// deleted and no other field is ever mutated after creation.
func (s *Store) SetOrderStatus(id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// --- admins ---

func (s *Store) Admins() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.admins))
	copy(out, s.admins)
	return out
}

func (s *Store) Admin(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Store) AdminByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Store) AddAdmin(a models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins = append(s.admins, a)
}

func (s *Store) SetAdminStatus(id string, status models.AdminStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.admins {
		if s.admins[i].ID == id {
			s.admins[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// --- notifications ---

// PrependNotification inserts at the head of the log; the log is
// append-only and entries are immutable.
func (s *Store) PrependNotification(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]models.Notification{n}, s.notifications...)
}

func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}
