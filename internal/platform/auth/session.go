// Package auth implements the dashboard's session gate: a LoggedOut/LoggedIn
// state machine realized as HMAC-signed bearer tokens plus a revocation list.
//
// The login check itself is a demo placeholder: any non-empty identifier and
// secret pair is accepted. It exists to exercise the redirect-to-login guard,
// not to authenticate anyone, and must not be silently hardened — a real
// credential backend replaces Login wholesale.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const issuer = "oncotwin"

// ErrAuthRejected is returned when the placeholder gate refuses a login.
var ErrAuthRejected = errors.New("auth rejected: identifier and secret are required")

// ErrInvalidSession is returned for tokens that are malformed, expired, or
// revoked by logout.
var ErrInvalidSession = errors.New("invalid or expired session")

// Claims is the session token payload. Subject carries the clinician
// identifier supplied at login.
type Claims struct {
	jwt.RegisteredClaims
}

// SessionManager issues, verifies, and revokes session tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> token expiry, pruned on access
}

func NewSessionManager(secret []byte, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret:  secret,
		ttl:     ttl,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

// Login transitions LoggedOut -> LoggedIn by issuing a session token.
// Placeholder gate: both fields non-empty is the entire check.
func (m *SessionManager) Login(identifier, secret string) (string, error) {
	if strings.TrimSpace(identifier) == "" || strings.TrimSpace(secret) == "" {
		return "", ErrAuthRejected
	}

	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identifier,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Logout revokes the presented token. Unknown or already-expired tokens are
// ignored so logout is always safe to call.
func (m *SessionManager) Logout(token string) {
	claims, err := m.parse(token)
	if err != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	m.revoked[claims.ID] = claims.ExpiresAt.Time
}

// Verify returns the claims for a live, unrevoked session token.
func (m *SessionManager) Verify(token string) (*Claims, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	if _, gone := m.revoked[claims.ID]; gone {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func (m *SessionManager) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// pruneLocked drops revocation entries for tokens past their own expiry;
// an expired token fails verification regardless. Caller holds mu.
func (m *SessionManager) pruneLocked() {
	now := m.now()
	for jti, exp := range m.revoked {
		if now.After(exp) {
			delete(m.revoked, jti)
		}
	}
}

// UserIDKey is the echo context key carrying the authenticated identifier.
const UserIDKey = "user_id"

// RequireSession guards protected routes. Requests without a live session get
// 401, which the presentation layer turns into a redirect to the login screen.
func RequireSession(m *SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := BearerToken(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			claims, err := m.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}
			c.Set(UserIDKey, claims.Subject)
			return next(c)
		}
	}
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization format")
	}
	return parts[1], nil
}
