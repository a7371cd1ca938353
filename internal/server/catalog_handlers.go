package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malakstore/souq/internal/catalog"
	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/pricing"
	"github.com/malakstore/souq/internal/store"
)

// productView decorates a product with its effective price so clients
// display exactly what totals are computed from.
type productView struct {
	models.Product
	EffectivePrice float64 `json:"effective_price"`
}

func viewProduct(p models.Product) productView {
	return productView{Product: p, EffectivePrice: pricing.ProductPrice(p)}
}

func viewProducts(products []models.Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, viewProduct(p))
	}
	return out
}

func (s *Server) listProducts(c *gin.Context) {
	var products []models.Product
	switch {
	case c.Query("offers") == "true":
		products = s.catalog.Offers()
	case c.Query("category") != "":
		cat := models.ProductCategory(c.Query("category"))
		if !models.ValidCategory(cat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		products = s.catalog.ByCategory(cat)
	default:
		products = s.catalog.List()
	}
	c.JSON(http.StatusOK, gin.H{"products": viewProducts(products)})
}

func (s *Server) getProduct(c *gin.Context) {
	p, err := s.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, viewProduct(p))
}

func (s *Server) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": s.notifier.Latest()})
}

func (s *Server) saveProduct(c *gin.Context) {
	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}

	saved, err := s.catalog.Save(req)
	if err != nil {
		var ve *catalog.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ve.Error(), "field": ve.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewProduct(saved))
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.catalog.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
