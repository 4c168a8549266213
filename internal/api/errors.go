package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"bling-api-backend/internal/bling"
	"bling-api-backend/internal/logger"
	"bling-api-backend/internal/model"
)

var (
	// ErrNotFound marks a single-entity lookup whose unwrapped data is empty.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks an inbound payload that fails shape requirements.
	ErrValidation = errors.New("invalid request")
)

// statusFor maps an error to the HTTP status it is surfaced with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, bling.ErrConfiguration), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		// RemoteCallError, ErrMalformedResponse and anything unexpected.
		return http.StatusInternalServerError
	}
}

// respondError aborts the request with the mapped status and the error text.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c).Error("request failed", zap.Error(err))
	}
	c.AbortWithStatusJSON(status, model.ErrorResponse{Error: err.Error()})
}

// bindingError turns a gin binding failure into an ErrValidation error with a
// readable field list.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: malformed body: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", jsonName(fe), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func jsonName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}
