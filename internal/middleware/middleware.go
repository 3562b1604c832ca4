package middleware

import (
	"net/http"
	"time"

	"recipefinder/internal/apperrors"
	"recipefinder/internal/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// RequireSession aborts with 401 unless the request carries a valid session.
func RequireSession(provider identity.SessionProvider, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := resolveSession(c, provider, log)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.Unauthorized().Body())
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// OptionalSession stores the session when there is one and always continues.
func OptionalSession(provider identity.SessionProvider, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := resolveSession(c, provider, log); session != nil {
			c.Set(sessionKey, session)
		}
		c.Next()
	}
}

// A failed lookup is treated as signed out.
func resolveSession(c *gin.Context, provider identity.SessionProvider, log *zap.Logger) *identity.Session {
	session, err := provider.CurrentSession(c.Request)
	if err != nil {
		log.Warn("session lookup failed", zap.Error(err))
		return nil
	}
	return session
}

// SessionFromContext returns the session stored by RequireSession or
// OptionalSession, or nil.
func SessionFromContext(c *gin.Context) *identity.Session {
	value, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := value.(*identity.Session)
	return session
}

// RequestLogger logs one line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
