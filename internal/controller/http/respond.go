package http

import (
	"errors"
	"net/http"

	"music-library/internal/entity"
	"music-library/internal/usecase"
	"music-library/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func actorFromContext(c *gin.Context) entity.Actor {
	return entity.Actor{
		ID:   c.GetString(middleware.ContextUserID),
		Role: entity.UserRole(c.GetString(middleware.ContextRole)),
	}
}

func statusFor(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindInvalid:
		return http.StatusBadRequest
	case usecase.KindUnauthorized:
		return http.StatusUnauthorized
	case usecase.KindForbidden:
		return http.StatusForbidden
	case usecase.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates use-case errors into the {message, error?} failure
// body. Anything untyped is an infrastructure fault and stays generic.
func respondError(c *gin.Context, err error) {
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) {
		c.JSON(statusFor(ucErr.Kind), gin.H{"message": ucErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
}
