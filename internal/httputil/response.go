// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/coursecatalog/internal/errors"
)

// ErrorTemplate is the template rendered by HandleErrorHTML.
const ErrorTemplate = "error.html"

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ErrorPage is the view model of the error template.
type ErrorPage struct {
	Title      string
	StatusCode int
	Message    string
	RequestID  string
	// Detail is only set outside release mode.
	Detail any
}

// classify maps domain errors to a status code, a stable error code and a
// message safe to show to visitors.
func classify(err error) (int, ErrorResponse) {
	switch apperrors.Kind(err) {
	case apperrors.ErrNotFound:
		return http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		}

	case apperrors.ErrInvalidInput:
		return http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		}

	case apperrors.ErrUnauthorized:
		return http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "The content API rejected the configured access token",
		}

	case apperrors.ErrNotImplemented:
		return http.StatusNotImplemented, ErrorResponse{
			Error:   "not_implemented",
			Message: "This page is not available yet",
		}

	case apperrors.ErrUnavailable:
		return http.StatusServiceUnavailable, ErrorResponse{
			Error:   "unavailable",
			Message: "No space is connected. Configure one on the settings page.",
		}

	default:
		// For unknown/internal errors, don't expose details to the client
		return http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		}
	}
}

func logError(ctx context.Context, logger *slog.Logger, statusCode int, code string, err error) {
	if logger == nil {
		return
	}
	level := slog.LevelError
	if statusCode < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "request failed",
		slog.Int("status_code", statusCode),
		slog.String("error_code", code),
		slog.Any("error", err),
	)
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response using Gin.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, errorResponse := classify(err)
	logError(c.Request.Context(), logger, statusCode, errorResponse.Error, err)

	c.JSON(statusCode, errorResponse)
}

// HandleErrorHTML maps domain errors to HTTP status codes and renders the
// error template.
func HandleErrorHTML(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	statusCode, errorResponse := classify(err)
	logError(c.Request.Context(), logger, statusCode, errorResponse.Error, err)

	page := ErrorPage{
		Title:      http.StatusText(statusCode),
		StatusCode: statusCode,
		Message:    errorResponse.Message,
		RequestID:  requestid.Get(c),
	}
	if gin.Mode() != gin.ReleaseMode {
		page.Detail = map[string]string{
			"error":      err.Error(),
			"error_code": errorResponse.Error,
		}
	}

	c.HTML(statusCode, ErrorTemplate, page)
}
