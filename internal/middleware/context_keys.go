package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	subjectIDKey = contextKey("subjectID")
	roleKey      = contextKey("role")
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ID   int64
	Role string
}

// WithPrincipal stores the authenticated caller in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, subjectIDKey, p.ID)
	return context.WithValue(ctx, roleKey, p.Role)
}

// GetPrincipalFromContext retrieves the authenticated caller from the Gin request.
// It returns the principal and a boolean indicating if it was found.
func GetPrincipalFromContext(c *gin.Context) (Principal, bool) {
	ctx := c.Request.Context()
	id, ok := ctx.Value(subjectIDKey).(int64)
	if !ok {
		return Principal{}, false
	}
	role, ok := ctx.Value(roleKey).(string)
	if !ok {
		return Principal{}, false
	}
	return Principal{ID: id, Role: role}, true
}
