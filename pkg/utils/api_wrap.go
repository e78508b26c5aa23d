package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecotrip/internal/models/response_models"
)

type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	TraceID string              `json:"trace_id,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func RespondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, response_models.MessageResponse{Message: message})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   statusLabel(code),
		Message: message,
		TraceID: TraceID(c),
	})
}

func RespondValidationError(c *gin.Context, verr *ValidationError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   statusLabel(http.StatusBadRequest),
		Message: "Validation failed",
		TraceID: TraceID(c),
		Errors:  verr.Fields,
	})
}

// TraceID returns the id set by the trace middleware, or "" outside of it.
func TraceID(c *gin.Context) string {
	v, ok := c.Get("trace_id")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func HandleServiceError(c *gin.Context, err error) {
	var verr *ValidationError

	switch {
	case errors.As(err, &verr):
		RespondValidationError(c, verr)
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrDestinationNotFound):
		RespondError(c, http.StatusNotFound, "Destination not found")
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrNotInFavorites):
		RespondError(c, http.StatusBadRequest, "This destination is not in the user's favorites")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "A user with this email already exists")
	case errors.Is(err, ErrInvalidDestinationReference):
		RespondError(c, http.StatusBadRequest, "Referenced destination does not exist")
	case errors.Is(err, ErrInvalidID):
		RespondError(c, http.StatusBadRequest, "Invalid id parameter")
	case errors.Is(err, ErrEcoServiceUnavailable):
		RespondError(c, http.StatusInternalServerError, "Eco suggestion service unavailable, check the AI API key configuration")
	case errors.Is(err, ErrEcoServiceTimeout):
		zap.L().Warn("eco suggestion call timed out", zap.Error(err), zap.String("trace_id", TraceID(c)))
		RespondError(c, http.StatusInternalServerError, "Eco suggestion service timed out after 30 seconds")
	case errors.Is(err, ErrEcoServiceFailed):
		zap.L().Error("eco suggestion call failed", zap.Error(err), zap.String("trace_id", TraceID(c)))
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", TraceID(c)))
		RespondError(c, http.StatusInternalServerError, "Server error")
	default:
		zap.L().Error("unknown error", zap.Error(err), zap.String("trace_id", TraceID(c)))
		RespondError(c, http.StatusInternalServerError, "Server error")
	}
}

func statusLabel(code int) string {
	if code == http.StatusInternalServerError {
		return "Server Error"
	}
	return http.StatusText(code)
}
