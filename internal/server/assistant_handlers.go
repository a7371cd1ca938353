package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malakstore/souq/internal/models"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// chat forwards a customer query to the assistant together with the live
// catalog. A failed collaborator call still answers 200 with the fallback
// text; the assistant is never a hard dependency.
func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	products := s.catalog.List()
	reply := s.assistant.Chat(c.Request.Context(), req.Message, products)

	resp := gin.H{"text": reply.Text}
	if reply.ProductID != "" {
		if p, err := s.catalog.Get(reply.ProductID); err == nil {
			resp["product"] = viewProduct(p)
		}
	}
	c.JSON(http.StatusOK, resp)
}

type describeRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Category models.ProductCategory `json:"category" binding:"required"`
}

func (s *Server) describeProduct(c *gin.Context) {
	var req describeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are required"})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	description := s.assistant.Describe(c.Request.Context(), req.Name, req.Category)
	c.JSON(http.StatusOK, gin.H{"description": description})
}
