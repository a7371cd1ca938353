package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malakstore/souq/internal/models"
)

func (s *Server) openSession(c *gin.Context) {
	sess := s.sessions.Open()

	// A stored profile from a previous run means this client is not a
	// guest; absence is not an error.
	if user, err := s.profiles.Load(); err == nil && user != nil {
		sess.SetUser(user)
	}

	c.JSON(http.StatusCreated, gin.H{"session_token": sess.ID})
}

func (s *Server) getCart(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"items": sess.Cart.Items(),
		"total": sess.Cart.Total(),
	})
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	product, err := s.catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	sess := currentSession(c)
	sess.Cart.Add(product)
	c.JSON(http.StatusOK, gin.H{
		"items": sess.Cart.Items(),
		"total": sess.Cart.Total(),
	})
}

type updateItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required and must be non-zero"})
		return
	}

	sess := currentSession(c)
	sess.Cart.UpdateQuantity(c.Param("id"), req.Delta)
	c.JSON(http.StatusOK, gin.H{
		"items": sess.Cart.Items(),
		"total": sess.Cart.Total(),
	})
}

func (s *Server) removeCartItem(c *gin.Context) {
	sess := currentSession(c)
	sess.Cart.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"items": sess.Cart.Items(),
		"total": sess.Cart.Total(),
	})
}

func (s *Server) getProfile(c *gin.Context) {
	sess := currentSession(c)
	resp := gin.H{"profile": sess.ResolveProfile()}
	if u := sess.User(); u != nil {
		resp["user"] = u
	} else {
		resp["user"] = nil
	}
	c.JSON(http.StatusOK, resp)
}

type saveProfileRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// saveProfile merges the submitted delivery details over the current user
// (creating a guest customer record when none exists) and persists the
// result so the next session starts with it.
func (s *Server) saveProfile(c *gin.Context) {
	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	sess := currentSession(c)
	user := sess.User()
	if user == nil {
		user = &models.User{ID: "guest-id", Role: models.RoleCustomer}
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	sess.SetUser(user)
	sess.SetTempProfile(models.Profile{Name: req.Name, Phone: req.Phone, Location: req.Location})

	if err := s.profiles.Save(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
