package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogicum/internal/core/user"
	userPort "blogicum/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, token string) (*userPort.Identity, error) {
	args := m.Called(ctx, token)
	identity, _ := args.Get(0).(*userPort.Identity)
	return identity, args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"viewer": ViewerID(c).String(), "username": c.GetString(ContextUsername)})
	})
	r.GET("/private", handlers...)
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	alice := &userPort.Identity{UserID: uuid.Must(uuid.NewV4()), Username: "alice", TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}

	auth := new(mockAuthenticator)
	auth.On("Authenticate", mock.Anything, "good").Return(alice, nil)
	auth.On("Authenticate", mock.Anything, "revoked").Return(nil, user.ErrTokenRevoked)
	auth.On("Authenticate", mock.Anything, "broken").Return(nil, errors.New("redis down"))

	r := newEngine(JWTAuthMiddleware(auth, zap.NewNop()))

	tests := []struct {
		name     string
		header   string
		status   int
		location string
	}{
		{"no token", "", http.StatusFound, "/auth/login?next=%2Fprivate%3Fpage%3D2"},
		{"wrong scheme", "Basic good", http.StatusFound, "/auth/login?next=%2Fprivate%3Fpage%3D2"},
		{"revoked", "Bearer revoked", http.StatusFound, "/auth/login?next=%2Fprivate%3Fpage%3D2"},
		{"backend error", "Bearer broken", http.StatusInternalServerError, ""},
		{"valid", "Bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private?page=2", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), alice.UserID.String())
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	alice := &userPort.Identity{UserID: uuid.Must(uuid.NewV4()), Username: "alice"}

	auth := new(mockAuthenticator)
	auth.On("Authenticate", mock.Anything, "good").Return(alice, nil)
	auth.On("Authenticate", mock.Anything, "bad").Return(nil, user.ErrInvalidCredentials)

	r := newEngine(OptionalAuth(auth, zap.NewNop()))

	for header, want := range map[string]string{
		"":            uuid.Nil.String(),
		"Bearer bad":  uuid.Nil.String(),
		"bearer good": alice.UserID.String(),
	} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, header)
		assert.Contains(t, w.Body.String(), want, header)
	}
}

func TestRateLimit(t *testing.T) {
	r := newEngine(RateLimit(6))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newEngine(RateLimit(0))
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}
