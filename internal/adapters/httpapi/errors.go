package httpapi

import (
	"errors"
	"net/http"

	"blogicum/internal/core/category"
	"blogicum/internal/core/comment"
	"blogicum/internal/core/location"
	"blogicum/internal/core/policy"
	"blogicum/internal/core/post"
	"blogicum/internal/core/user"
	"blogicum/internal/core/validation"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// writeError maps use-case errors onto HTTP answers. Ownership denials are
// handled by the caller because their answer depends on the route.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	if verrs, ok := validation.As(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	switch {
	case errors.Is(err, post.ErrNotFound),
		errors.Is(err, comment.ErrNotFound),
		errors.Is(err, category.ErrNotFound),
		errors.Is(err, location.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, user.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "username or email already taken"})
	case errors.Is(err, policy.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": policy.ErrNotOwner.Error()})
	default:
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func invalidInput(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

// pathID parses a uuid path parameter. Malformed ids never match a row.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func postURL(id uuid.UUID) string {
	return "/posts/" + id.String()
}

func profileURL(username string) string {
	return "/profile/" + username
}
