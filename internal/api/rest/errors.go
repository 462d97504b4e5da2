package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mintproof/mint-registry/internal/domain"
	"github.com/mintproof/mint-registry/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest    ErrorCode = "bad_request"
	errCodeMissingFields ErrorCode = "missing_fields"
	errCodeInvalidFormat ErrorCode = "invalid_format"
	errCodeValidation    ErrorCode = "validation_failed"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Success bool        `json:"success"`
	Error   errorDetail `json:"error"`
}

// errorDetail contains error information. Fields and FieldErrors enumerate
// the failing payload fields when the error is field-specific.
type errorDetail struct {
	Code        ErrorCode           `json:"code"`
	Message     string              `json:"message"`
	Details     string              `json:"details,omitempty"`
	Fields      []string            `json:"fields,omitempty"`
	FieldErrors []domain.FieldError `json:"field_errors,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, detail errorDetail) {
	c.JSON(statusCode, errorResponse{Success: false, Error: detail})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	detail := errorDetail{Code: errCodeBadRequest, Message: message}
	if len(details) > 0 {
		detail.Details = details[0]
	}
	respondWithError(c, http.StatusBadRequest, detail)
}

// respondMissingFields sends a 400 response naming every absent required field
func respondMissingFields(c *gin.Context, merr *domain.MissingFieldsError) {
	respondWithError(c, http.StatusBadRequest, errorDetail{
		Code:    errCodeMissingFields,
		Message: "Missing required fields",
		Fields:  merr.Fields,
	})
}

// respondValidationError sends a 400 response enumerating every failing field
func respondValidationError(c *gin.Context, verr *domain.ValidationError) {
	respondWithError(c, http.StatusBadRequest, errorDetail{
		Code:        errCodeValidation,
		Message:     "Validation failed",
		Fields:      verr.Fields(),
		FieldErrors: verr.FieldErrors,
	})
}

// respondInvalidFormat sends a 400 response for a malformed path or query value
func respondInvalidFormat(c *gin.Context, field string, message string) {
	respondWithError(c, http.StatusBadRequest, errorDetail{
		Code:    errCodeInvalidFormat,
		Message: message,
		Fields:  []string{field},
	})
}

// respondInternalError sends a 500 response and logs the underlying error.
// The underlying message is echoed to the caller only in debug mode.
func respondInternalError(c *gin.Context, debug bool, err error, message string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))

	detail := errorDetail{Code: errCodeInternalError, Message: message}
	if debug && err != nil {
		detail.Details = err.Error()
	}
	respondWithError(c, http.StatusInternalServerError, detail)
}
