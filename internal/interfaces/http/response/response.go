package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "arena.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain sentinel errors are mapped to their
// HTTP status; anything unrecognized becomes a 500.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrConflict),
		errors.Is(err, domainerrors.ErrTournamentFull),
		errors.Is(err, domainerrors.ErrRegistrationClosed),
		errors.Is(err, domainerrors.ErrOutOfStock):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrTokenExpired),
		errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("authentication failed")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
