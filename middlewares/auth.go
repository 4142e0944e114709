package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tastybites/tastybites/config"
	"github.com/tastybites/tastybites/models"
)

// Claims is the explicit session object carried through the request
// context: who is logged in and as what.
type Claims struct {
	UserID uuid.UUID
	Role   models.Role
	jwt.RegisteredClaims
}

type ContextKey string

const (
	sessionContextKey ContextKey = "session"

	// SessionCookie holds the signed session token for staff logins.
	SessionCookie = "tastybites_session"
)

// RequireRole gates a handler behind an active session with the given
// role. Auth failures are recovered by redirecting to the role's login
// page, never surfaced as a hard error.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := sessionFromCookie(r)
			if err != nil || claims.Role != role {
				http.Redirect(w, r, role.LoginPath(), http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the authenticated session, if any.
func GetSession(r *http.Request) (*Claims, error) {
	claims, ok := r.Context().Value(sessionContextKey).(*Claims)
	if !ok {
		return nil, errors.New("no session in context")
	}
	return claims, nil
}

func sessionFromCookie(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, errors.New("session cookie missing")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
