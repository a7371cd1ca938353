package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/malakstore/souq/internal/models"
)

// Seed populates an empty catalog and notification log with sample data
// for demos and local development. Calling it twice is a no-op.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) > 0 {
		return
	}

	products := []models.Product{
		{Name: "Fresh Red Apples", Category: models.CategoryFruitsVeg, Price: 8.5, Stock: 50, Description: "Crisp, sweet red apples"},
		{Name: "Local Veal Cut", Category: models.CategoryMeat, Price: 45.0, Stock: 10, Description: "Fresh, high-quality local veal"},
		{Name: "Natural Orange Juice", Category: models.CategoryJuices, Price: 12.0, Stock: 25, Discount: 10},
		{Name: "Chocolate Biscuits", Category: models.CategoryBiscuits, Price: 5.0, Stock: 100},
		{Name: "Hair Shampoo", Category: models.CategoryPersonalCare, Price: 18.0, Stock: 30},
		{Name: "Chocolate Cake", Category: models.CategoryCake, Price: 25.0, Stock: 15},
		{Name: "Surface Cleaner", Category: models.CategoryCleaning, Price: 15.0, Stock: 40},
		{Name: "Sparkling Soda", Category: models.CategoryDrinks, Price: 3.0, Stock: 200},
		{Name: "Fresh Bananas", Category: models.CategoryFruitsVeg, Price: 5.5, Stock: 60},
		{Name: "Whole Chicken", Category: models.CategoryMeat, Price: 22.0, Stock: 30},
	}
	for _, p := range products {
		p.ID = uuid.NewString()
		p.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/300/300", p.ID)
		p.IsOffer = p.Discount > 0
		s.products = append(s.products, p)
	}

	now := time.Now()
	s.notifications = []models.Notification{
		{ID: uuid.NewString(), Message: "50% off fruits and vegetables every Friday!", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: uuid.NewString(), Message: "A new selection of imported cheeses has arrived", CreatedAt: now.Add(-48 * time.Hour)},
	}
}
