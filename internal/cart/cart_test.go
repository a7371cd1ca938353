package cart

import (
	"testing"

	"github.com/malakstore/souq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price, discount float64) models.Product {
	return models.Product{ID: id, Name: "product-" + id, Category: models.CategoryDrinks, Price: price, Discount: discount}
}

func TestAddIncrementsExistingLine(t *testing.T) {
	c := New()
	c.Add(product("p", 10, 0))
	c.Add(product("p", 10, 0))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddKeepsLinesUniqueByProduct(t *testing.T) {
	c := New()
	c.Add(product("a", 10, 0))
	c.Add(product("b", 5, 0))
	c.Add(product("a", 10, 0))

	items := c.Items()
	require.Len(t, items, 2)
	seen := map[string]bool{}
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate line for %s", item.ID)
		seen[item.ID] = true
	}
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	c := New()
	c.Add(product("p", 10, 0))

	c.UpdateQuantity("p", -5)

	items := c.Items()
	require.Len(t, items, 1, "reaching the floor must not remove the line")
	assert.Equal(t, 1, items[0].Quantity)

	c.UpdateQuantity("p", 3)
	assert.Equal(t, 4, c.Items()[0].Quantity)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	c := New()
	c.Add(product("p", 10, 0))
	c.UpdateQuantity("nope", 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
	assert.Equal(t, 1, c.Len())
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(product("a", 10, 0))
	c.Add(product("b", 5, 0))
	c.UpdateQuantity("a", 9)

	c.Remove("a")
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	// Unknown id is a no-op, not an error.
	c.Remove("nope")
	assert.Equal(t, 1, c.Len())
}

func TestTotal(t *testing.T) {
	c := New()
	// P x2 at price 10 with 20% off, Q x1 at price 5 without discount.
	c.Add(product("P", 10, 20))
	c.Add(product("P", 10, 20))
	c.Add(product("Q", 5, 0))

	assert.InDelta(t, 21.0, c.Total(), 1e-9)
}

func TestQuantityInvariantUnderMixedOperations(t *testing.T) {
	c := New()
	c.Add(product("a", 1, 0))
	c.Add(product("b", 2, 0))
	c.UpdateQuantity("a", -10)
	c.UpdateQuantity("b", 4)
	c.Add(product("a", 1, 0))
	c.Remove("b")
	c.Add(product("c", 3, 0))
	c.UpdateQuantity("c", -1)

	for _, item := range c.Items() {
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(product("a", 1, 0))
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Zero(t, c.Total())
}
