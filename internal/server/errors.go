package server

import (
	"errors"
	"net/http"
	"strings"

	analysisdomain "github.com/callcenterinsight/insights/internal/analysis/domain"
	calldomain "github.com/callcenterinsight/insights/internal/call/domain"
	merchantdomain "github.com/callcenterinsight/insights/internal/merchant/domain"
	"github.com/callcenterinsight/insights/internal/search"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrConflict           = errors.New("conflict")
	ErrInternal           = errors.New("internal_error")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrServiceUnavailable = errors.New("service_unavailable")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, analysisdomain.ErrAlreadyExists):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrServiceUnavailable),
		errors.Is(err, search.ErrUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "service_unavailable",
			Message: "service unavailable",
		}
	case errors.Is(err, search.ErrUpstream):
		return http.StatusBadGateway, errorPayload{
			Type:    "bad_gateway",
			Message: "search service error",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isCallValidationError(err),
		isAnalysisValidationError(err),
		isMerchantValidationError(err):
		return true
	default:
		return false
	}
}

func isCallValidationError(err error) bool {
	switch {
	case errors.Is(err, calldomain.ErrInvalidCallID),
		errors.Is(err, calldomain.ErrInvalidAgentName),
		errors.Is(err, calldomain.ErrInvalidPhoneNumber):
		return true
	default:
		return false
	}
}

func isAnalysisValidationError(err error) bool {
	switch {
	case errors.Is(err, analysisdomain.ErrInvalidCallID),
		errors.Is(err, analysisdomain.ErrInvalidReason),
		errors.Is(err, analysisdomain.ErrInvalidReasonDetail),
		errors.Is(err, analysisdomain.ErrInvalidLimit),
		errors.Is(err, analysisdomain.ErrInvalidOffset):
		return true
	default:
		return false
	}
}

func isMerchantValidationError(err error) bool {
	switch {
	case errors.Is(err, merchantdomain.ErrInvalidMerchantID),
		errors.Is(err, merchantdomain.ErrEmptyMerchantIDs),
		errors.Is(err, merchantdomain.ErrTooManyMerchantIDs),
		errors.Is(err, merchantdomain.ErrInvalidPhone):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, calldomain.ErrNotFound),
		errors.Is(err, analysisdomain.ErrNotFound),
		errors.Is(err, merchantdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	if strings.HasPrefix(code, "empty_") {
		return strings.TrimPrefix(code, "empty_")
	}
	if strings.HasPrefix(code, "too_many_") {
		return strings.TrimPrefix(code, "too_many_")
	}
	return ""
}
