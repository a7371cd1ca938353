package catalog

import (
	"strings"
	"testing"

	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/notify"
	"github.com/malakstore/souq/internal/pricing"
	"github.com/malakstore/souq/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*Service, *store.Store) {
	st := store.New()
	return New(st, notify.New(st)), st
}

func validProduct() models.Product {
	return models.Product{
		Name:     "Fresh Apples",
		Category: models.CategoryFruitsVeg,
		Price:    10.0,
		Stock:    50,
	}
}

func TestSaveAssignsIDAndImage(t *testing.T) {
	svc, _ := newService()

	saved, err := svc.Save(validProduct())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotEmpty(t, saved.ImageURL)
	assert.False(t, saved.IsOffer)
}

func TestSaveValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Product)
		field  string
	}{
		{"empty name", func(p *models.Product) { p.Name = "" }, "name"},
		{"zero price", func(p *models.Product) { p.Price = 0 }, "price"},
		{"negative price", func(p *models.Product) { p.Price = -1 }, "price"},
		{"bad category", func(p *models.Product) { p.Category = "TOYS" }, "category"},
		{"negative stock", func(p *models.Product) { p.Stock = -1 }, "stock"},
		{"discount above 100", func(p *models.Product) { p.Discount = 120 }, "discount"},
		{"negative discount", func(p *models.Product) { p.Discount = -10 }, "discount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newService()
			p := validProduct()
			tt.mutate(&p)

			_, err := svc.Save(p)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			// Blocked save means no partial write.
			assert.Empty(t, st.Products())
		})
	}
}

func TestOfferInvariantRecomputedOnSave(t *testing.T) {
	svc, _ := newService()

	p := validProduct()
	p.Discount = 15
	p.IsOffer = false // clients cannot force the flag out of sync
	saved, err := svc.Save(p)
	require.NoError(t, err)
	assert.True(t, saved.IsOffer)

	saved.Discount = 0
	saved.IsOffer = true
	saved, err = svc.Save(saved)
	require.NoError(t, err)
	assert.False(t, saved.IsOffer)
}

func TestDiscountChangeEmitsPromoNotification(t *testing.T) {
	svc, st := newService()
	notifier := notify.New(st)

	saved, err := svc.Save(validProduct())
	require.NoError(t, err)
	require.Empty(t, notifier.Latest(), "no promo for a product without discount")

	// Product P (price 10, discount 0) updated to discount 20.
	saved.Discount = 20
	saved, err = svc.Save(saved)
	require.NoError(t, err)

	feed := notifier.Latest()
	require.Len(t, feed, 1)
	assert.Contains(t, feed[0].Message, "Fresh Apples")
	assert.Contains(t, feed[0].Message, "20%")
	assert.InDelta(t, 8.0, pricing.ProductPrice(saved), 1e-9)

	// Saving again with the same discount must not re-announce.
	_, err = svc.Save(saved)
	require.NoError(t, err)
	assert.Len(t, notifier.Latest(), 1)

	// Dropping the discount to zero is not a promo either.
	saved.Discount = 0
	_, err = svc.Save(saved)
	require.NoError(t, err)
	assert.Len(t, notifier.Latest(), 1)
}

func TestEffectivePriceNeverExceedsBase(t *testing.T) {
	svc, _ := newService()
	for _, discount := range []float64{0, 10, 20, 50, 100} {
		p := validProduct()
		p.Discount = discount
		saved, err := svc.Save(p)
		require.NoError(t, err)

		effective := pricing.ProductPrice(saved)
		assert.LessOrEqual(t, effective, saved.Price)
		if discount == 0 {
			assert.Equal(t, saved.Price, effective)
		}
	}
}

func TestByCategoryAndOffers(t *testing.T) {
	svc, _ := newService()

	apples := validProduct()
	_, err := svc.Save(apples)
	require.NoError(t, err)

	soda := models.Product{Name: "Soda", Category: models.CategoryDrinks, Price: 3, Discount: 30}
	_, err = svc.Save(soda)
	require.NoError(t, err)

	drinks := svc.ByCategory(models.CategoryDrinks)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Soda", drinks[0].Name)

	offers := svc.Offers()
	require.Len(t, offers, 1)
	assert.Equal(t, "Soda", offers[0].Name)
}

func TestDelete(t *testing.T) {
	svc, _ := newService()
	saved, err := svc.Save(validProduct())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(saved.ID))
	_, err = svc.Get(saved.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "price", Reason: "must be positive"}
	assert.True(t, strings.Contains(err.Error(), "price"))
}
