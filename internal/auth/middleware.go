// Package auth implements the authentication gate every protected route
// passes through: token extraction, verification, and subject resolution.
package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	dom "github.com/PremjitDas/Task-Management-App/internal/domain"
	"github.com/PremjitDas/Task-Management-App/internal/dto"
	"github.com/PremjitDas/Task-Management-App/internal/repo"
	"github.com/PremjitDas/Task-Management-App/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// SessionCookieName carries the session token; the Authorization header is
// the fallback for non-cookie clients.
const SessionCookieName = "accessToken"

const contextKeyUser = "current_user"

// Attach records a resolved identity on the context for CurrentUser to read.
func Attach(c *gin.Context, u dom.User) {
	c.Set(contextKeyUser, u)
}

// CurrentUser returns the identity attached by RequireAuth. The zero user
// and false mean the request never passed the gate.
func CurrentUser(c *gin.Context) (dom.User, bool) {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return dom.User{}, false
	}
	u, ok := v.(dom.User)
	return u, ok
}

// RequireAuth returns the gate middleware. It locates the session token
// (cookie first, bearer header fallback), verifies it, resolves the subject
// against the user store, and attaches the identity to the context. Every
// failure mode collapses to the same 401 externally; the distinct reason
// goes to the log only.
func RequireAuth(codec *token.Codec, users repo.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		userID, err := codec.Verify(raw)
		if err != nil {
			log.Printf("auth: token rejected (%s)", token.FailReason(err))
			reject(c)
			return
		}
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			// A valid token for a vanished user answers exactly like a bad
			// token; callers cannot probe which ids exist.
			if errors.Is(err, pgx.ErrNoRows) {
				log.Printf("auth: token rejected (%s)", token.ReasonSubjectGone)
			} else {
				log.Printf("auth: user lookup failed: %v", err)
			}
			reject(c)
			return
		}
		u.PasswordHash = ""
		Attach(c, u)
		c.Next()
	}
}

// extractToken checks the session cookie, then the Authorization header.
func extractToken(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookieName); err == nil && v != "" {
		return v
	}
	h := c.GetHeader("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func reject(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.Fail(http.StatusUnauthorized, "unauthorized request"))
}
