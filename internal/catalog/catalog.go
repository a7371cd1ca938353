// Package catalog manages the product collection: the source of truth for
// price, discount and stock. Mutations are reached only through the admin
// surface; reads are public.
package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/notify"
	"github.com/malakstore/souq/internal/store"
)

// ValidationError blocks a catalog save; nothing is written when it fires.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid product %s: %s", e.Field, e.Reason)
}

type Service struct {
	store    *store.Store
	notifier *notify.Notifier
}

func New(s *store.Store, n *notify.Notifier) *Service {
	return &Service{store: s, notifier: n}
}

func (s *Service) List() []models.Product {
	return s.store.Products()
}

func (s *Service) Get(id string) (models.Product, error) {
	return s.store.Product(id)
}

func (s *Service) ByCategory(c models.ProductCategory) []models.Product {
	var out []models.Product
	for _, p := range s.store.Products() {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// Offers returns every product currently carrying a discount.
func (s *Service) Offers() []models.Product {
	var out []models.Product
	for _, p := range s.store.Products() {
		if p.Discount > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Save creates or updates a product. A change that introduces or alters a
// non-zero discount emits one promotional notification. The write is
// all-or-nothing: validation failures leave the catalog untouched.
func (s *Service) Save(p models.Product) (models.Product, error) {
	if err := validate(p); err != nil {
		return models.Product{}, err
	}

	var oldDiscount float64
	if p.ID != "" {
		if prev, err := s.store.Product(p.ID); err == nil {
			oldDiscount = prev.Discount
		}
	} else {
		p.ID = uuid.NewString()
	}
	if p.ImageURL == "" {
		p.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/300/300", p.ID)
	}
	p.IsOffer = p.Discount > 0

	s.store.UpsertProduct(p)

	if p.Discount > 0 && p.Discount != oldDiscount {
		s.notifier.PromoCreated(p.Name, p.Discount)
	}
	return p, nil
}

func (s *Service) Delete(id string) error {
	return s.store.DeleteProduct(id)
}

func validate(p models.Product) error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Price <= 0 {
		return &ValidationError{Field: "price", Reason: "must be positive"}
	}
	if !models.ValidCategory(p.Category) {
		return &ValidationError{Field: "category", Reason: "unknown category"}
	}
	if p.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	if p.Discount < 0 || p.Discount > 100 {
		return &ValidationError{Field: "discount", Reason: "must be between 0 and 100"}
	}
	return nil
}
