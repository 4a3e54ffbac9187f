package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	"github.com/smallbiznis/rosterd/internal/identity"
	"go.uber.org/zap"
)

const (
	headerRequestID     = "X-Request-ID"
	contextPrincipalKey = "principal"
	contextRequestIDKey = "request_id"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextRequestIDKey, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString(contextRequestIDKey)),
		)
	}
}

func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		principal, err := s.verifier.Verify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextPrincipalKey, principal)
		c.Next()
	}
}

func (s *Server) authorize(object, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := principalFrom(c)
		if principal == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if err := s.authzSvc.Authorize(c.Request.Context(), principal.Role, object, action); err != nil {
			AbortWithError(c, err)
			return
		}
		c.Next()
	}
}

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := principalFrom(c)
		if principal == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if principal.Role != employeedomain.RoleAdmin {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) *identity.Principal {
	v, ok := c.Get(contextPrincipalKey)
	if !ok {
		return nil
	}
	principal, ok := v.(*identity.Principal)
	if !ok {
		return nil
	}
	return principal
}
