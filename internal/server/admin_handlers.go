package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/malakstore/souq/internal/auth"
	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/store"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	admin, token, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		var notAuthorized *auth.NotAuthorizedError
		if errors.As(err, &notAuthorized) {
			// The account exists and the password matched; surface the
			// approval status so the UI can show a specific message.
			c.JSON(http.StatusForbidden, gin.H{
				"error":  notAuthorized.Error(),
				"status": notAuthorized.Status,
			})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password incorrect"})
		return
	}

	// Attach the admin to the caller's shopping session (when it has one)
	// and remember the login across restarts.
	if sess := s.sessions.Get(c.GetHeader(sessionHeader)); sess != nil {
		sess.SetUser(&admin)
	}
	if err := s.profiles.Save(&admin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": admin})
}

func (s *Server) logout(c *gin.Context) {
	if token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "); token != "" {
		s.auth.Logout(token)
	}
	if sess := s.sessions.Get(c.GetHeader(sessionHeader)); sess != nil {
		sess.SetUser(nil)
	}
	if err := s.profiles.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear stored profile"})
		return
	}
	c.Status(http.StatusNoContent)
}

type broadcastRequest struct {
	Message string `json:"message" binding:"required"`
}

func (s *Server) broadcastNotification(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	c.JSON(http.StatusCreated, s.notifier.Broadcast(req.Message))
}

type registerAdminRequest struct {
	Name     string             `json:"name" binding:"required"`
	Email    string             `json:"email" binding:"required,email"`
	Password string             `json:"password" binding:"required"`
	Status   models.AdminStatus `json:"status"`
}

func (s *Server) registerAdmin(c *gin.Context) {
	var req registerAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	admin, err := s.auth.Register(currentAdmin(c), req.Name, req.Email, req.Password, req.Status)
	if err != nil {
		if errors.Is(err, auth.ErrOwnerOnly) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, admin)
}

func (s *Server) listAdmins(c *gin.Context) {
	admins, err := s.auth.ListAdmins(currentAdmin(c))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

type adminStatusRequest struct {
	Status models.AdminStatus `json:"status" binding:"required"`
}

func (s *Server) updateAdminStatus(c *gin.Context) {
	var req adminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	admin, err := s.auth.SetStatus(currentAdmin(c), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, auth.ErrOwnerOnly):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
		return
	case errors.Is(err, auth.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, admin)
}

// saveSnapshot persists the whole store to the configured database. This
// is the explicit-save operation; without a database the store is memory
// only and the endpoint says so.
func (s *Server) saveSnapshot(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot persistence is not configured"})
		return
	}
	if err := s.db.SaveSnapshot(s.store); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
