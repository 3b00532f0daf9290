package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"blogicum/internal/core/user"
	userPort "blogicum/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// کلیدهای context برای کاربر احراز هویت شده
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextIdentity = "identity"
)

// LoginPath is where anonymous callers of protected routes are sent.
const LoginPath = "/auth/login"

// Authenticator resolves a bearer token into the caller it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*userPort.Identity, error)
}

// JWTAuthMiddleware requires a valid token. Callers without one are
// redirected to the login page with the requested path in "next".
func JWTAuthMiddleware(auth Authenticator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := authenticate(c, auth)
		if err != nil && !isCredentialError(err) {
			logger.Error("Authentication failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if identity == nil {
			c.Redirect(http.StatusFound, LoginRedirect(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and lets
// everybody else through as anonymous.
func OptionalAuth(auth Authenticator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := authenticate(c, auth)
		if err != nil && !isCredentialError(err) {
			logger.Error("Authentication failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if identity != nil {
			setIdentity(c, identity)
		}
		c.Next()
	}
}

// LoginRedirect builds the login URL that returns to next afterwards.
func LoginRedirect(next string) string {
	return LoginPath + "?next=" + url.QueryEscape(next)
}

// CurrentIdentity returns the authenticated caller, if any.
func CurrentIdentity(c *gin.Context) (*userPort.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*userPort.Identity)
	return identity, ok
}

// ViewerID returns the caller's id, or uuid.Nil for anonymous requests.
func ViewerID(c *gin.Context) uuid.UUID {
	if identity, ok := CurrentIdentity(c); ok {
		return identity.UserID
	}
	return uuid.Nil
}

// authenticate returns a nil identity without error when no token was sent.
func authenticate(c *gin.Context, auth Authenticator) (*userPort.Identity, error) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		return nil, nil
	}
	return auth.Authenticate(c.Request.Context(), token)
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func isCredentialError(err error) bool {
	return errors.Is(err, user.ErrInvalidCredentials) || errors.Is(err, user.ErrTokenRevoked)
}

func setIdentity(c *gin.Context, identity *userPort.Identity) {
	c.Set(ContextIdentity, identity)
	c.Set(ContextUserID, identity.UserID.String())
	c.Set(ContextUsername, identity.Username)
}
