// Bearer-token authentication middleware.
//
// RequireAuth resolves the Authorization header to a full user record and
// stores it in the Gin context so downstream handlers (and the access gate,
// which reconciles subscription state on that record) never re-read the row.
// RequireAdmin layers a role check on top.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/auth"
	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/repo"
)

const (
	// userKey is the Gin context key holding the authenticated *domain.User.
	userKey = "user"
	// userIDKey / roleKey expose the pieces most handlers need directly.
	userIDKey = "userID"
	roleKey   = "role"
)

// RequireAuth authenticates the request via a Bearer access token.
//
// On success the context carries the user under "user", plus "userID" and
// "role" for convenience. Failures abort with a JSON 401; a valid token for a
// deactivated account aborts with 403.
func RequireAuth(db *gorm.DB, tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}

		userID, err := tokens.VerifyAccess(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
			return
		}

		u, err := repo.GetUser(c.Request.Context(), db, userID)
		if err != nil {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "unknown user")
			return
		}
		if !u.IsActive {
			abortJSON(c, http.StatusForbidden, "account_disabled", "account is disabled")
			return
		}

		c.Set(userKey, u)
		c.Set(userIDKey, u.ID)
		c.Set(roleKey, u.Role)
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose user lacks the admin
// role. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get(roleKey); role != domain.RoleAdmin {
			abortJSON(c, http.StatusForbidden, "forbidden", "admin access required")
			return
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user stored by RequireAuth, or nil.
func UserFrom(c *gin.Context) *domain.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

// abortJSON writes the standard error envelope without depending on the
// handlers package (which imports this one).
func abortJSON(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       code,
		"message":    msg,
	})
}
