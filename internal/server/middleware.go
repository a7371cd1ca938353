package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/malakstore/souq/internal/auth"
	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/session"
)

const (
	sessionHeader = "X-Session-Token"

	ctxSessionKey = "session"
	ctxAdminKey   = "admin"
)

// requireSession resolves the client's session token. Cart, profile and
// order operations are meaningless without one.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(sessionHeader)
		sess := s.sessions.Get(token)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing or unknown session token, open one via POST /api/session",
			})
			return
		}
		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// requireAdmin gates the staff surface behind a bearer token issued by
// login. The approval status is re-checked on every request.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		admin, err := s.auth.Authenticate(token)
		if err != nil {
			var notAuthorized *auth.NotAuthorizedError
			if errors.As(err, &notAuthorized) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":  notAuthorized.Error(),
					"status": notAuthorized.Status,
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin authentication required"})
			return
		}
		c.Set(ctxAdminKey, admin)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(ctxSessionKey).(*session.Session)
}

func currentAdmin(c *gin.Context) models.User {
	return c.MustGet(ctxAdminKey).(models.User)
}
