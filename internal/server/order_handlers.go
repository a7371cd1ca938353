package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malakstore/souq/internal/checkout"
	"github.com/malakstore/souq/internal/maplink"
	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/store"
)

// orderView adds the delivery map link staff use to locate the customer.
type orderView struct {
	models.Order
	MapLink string `json:"map_link,omitempty"`
}

func viewOrders(orders []models.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderView{Order: o, MapLink: maplink.ForLocation(o.CustomerLocation)})
	}
	return out
}

func (s *Server) placeOrder(c *gin.Context) {
	sess := currentSession(c)

	order, err := s.checkout.PlaceOrder(sess)
	switch {
	case errors.Is(err, checkout.ErrMissingProfile):
		// Recoverable: the client should collect name, phone and location
		// and retry.
		c.JSON(http.StatusConflict, gin.H{
			"error":    "complete your name, phone and location to place the order",
			"redirect": "profile",
		})
		return
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (s *Server) listMyOrders(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, gin.H{"orders": viewOrders(s.store.OrdersByUser(sess.UserID()))})
}

func (s *Server) listAllOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": viewOrders(s.store.Orders())})
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	order, err := s.checkout.UpdateStatus(c.Param("id"), req.Status)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	case errors.Is(err, checkout.ErrSameStatus):
		// No-op by contract: report the unchanged order, emit nothing.
		current, _ := s.store.Order(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"order": current, "changed": false})
		return
	case errors.Is(err, checkout.ErrOrderDelivered), errors.Is(err, checkout.ErrUnknownStatus):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "changed": true})
}

func (s *Server) adminSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.checkout.Summarize())
}
