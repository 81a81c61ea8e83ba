package handlers

import (
	"errors"
	"net/http"

	"travelplanner/internal/domain"
	"travelplanner/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the payload of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Details   any    `json:"details"`
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

type fieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
		Message:   message,
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), validationDetails(err))
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}

func validationDetails(err error) []fieldError {
	var many domain.ValidationErrors
	if errors.As(err, &many) {
		out := make([]fieldError, 0, len(many))
		for _, e := range many {
			out = append(out, fieldError{Field: e.Field, Msg: e.Msg})
		}
		return out
	}
	var one domain.ValidationError
	if errors.As(err, &one) {
		return []fieldError{{Field: one.Field, Msg: one.Msg}}
	}
	return nil
}
