package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

type contextKey string

const (
	contextKeySession = contextKey("session")

	// Cookie name follows the __Host- prefix rule (no Domain attribute
	// allowed, Secure + Path=/ required).
	SessionCookieName = "__Host-sessionToken"

	// TokenIssuer identifies this portal in session tokens.
	TokenIssuer = "StrataPortal"
)

// Session is the explicit per-request authentication state. It replaces the
// client-visible login flag the old portal relied on; the signed token is
// the only source.
type Session struct {
	UserID      string
	Email       string
	DisplayName string
}

// SessionFromContext returns the session injected by SessionGuard.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKeySession).(Session)
	return s, ok
}

// ContextWithSession is exported for tests that exercise handlers directly.
func ContextWithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKeySession, s)
}

// SessionGuard protects portal routes. Browser navigations without a valid
// session are sent to the login page before any protected content is
// served; API callers get a 401. The session travels in a cookie for web
// clients and in an Authorization bearer header otherwise.
func SessionGuard(secret []byte, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractSessionToken(r)
			if err != nil {
				rejectUnauthenticated(w, r, loginPath, utils.ErrCodeUnauthorized, err.Error(), nil)
				return
			}

			sess, vErr := ValidateSessionToken(tokenStr, secret)
			if vErr != nil {
				code := utils.ErrCodeUnauthorized
				msg := "Invalid session"
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					code = utils.ErrCodeTokenExpired
					msg = "Session expired"
				}
				rejectUnauthenticated(w, r, loginPath, code, msg, vErr)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), sess)))
		})
	}
}

// ValidateSessionToken checks signature, issuer and expiry and extracts the
// session claims.
func ValidateSessionToken(tokenString string, secret []byte) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return Session{}, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Session{}, errors.New("invalid token claims")
	}

	iss, ok := claims["iss"].(string)
	if !ok || iss != TokenIssuer {
		return Session{}, errors.New("invalid token issuer")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Session{}, errors.New("missing subject claim")
	}

	sess := Session{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		sess.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		sess.DisplayName = name
	}
	return sess, nil
}

// helper: cookie for web clients, Bearer header for everything else.
func extractSessionToken(r *http.Request) (string, error) {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing session cookie or Authorization header")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}

// rejectUnauthenticated redirects browser navigations to the login page and
// answers API clients with a coded 401.
func rejectUnauthenticated(w http.ResponseWriter, r *http.Request, loginPath, code, msg string, devErr error) {
	if isBrowserNavigation(r) {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}
	utils.RespondErrorWithCode(w, http.StatusUnauthorized, code, msg, nil, devErr)
}

func isBrowserNavigation(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}
