package http

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// Session is the request-scoped view of the caller's session cookie.
// It is attached once by the session middleware and never modified afterwards.
type Session struct {
	ID string
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session attached to ctx, if any.
func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(Session)
	return session, ok
}

func (h *Handler) sessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(h.cookieName); err == nil {
			if id = strings.TrimSpace(id); id != "" {
				c.Request = c.Request.WithContext(WithSession(c.Request.Context(), Session{ID: id}))
			}
		}
		c.Next()
	}
}
