package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	budgetlinedomain "github.com/vowsuite/vowsuite/internal/budgetline/domain"
	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	"github.com/vowsuite/vowsuite/internal/ratelimit"
	seatingdomain "github.com/vowsuite/vowsuite/internal/seating/domain"
	taskdomain "github.com/vowsuite/vowsuite/internal/task/domain"
	vendordomain "github.com/vowsuite/vowsuite/internal/vendors/domain"
	venuedomain "github.com/vowsuite/vowsuite/internal/venue/domain"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
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
	// Quota denials carry the figures for an upgrade prompt.
	Resource string `json:"resource,omitempty"`
	Current  *int64 `json:"current,omitempty"`
	Limit    *int64 `json:"limit,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized       = errors.New("unauthorized")
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

	var quotaErr *quotadomain.QuotaExceededError
	if errors.As(err, &quotaErr) {
		current := quotaErr.Current
		limit := int64(quotaErr.Limit)
		return http.StatusPaymentRequired, errorPayload{
			Type:     "quota_exceeded",
			Message:  "plan limit reached, upgrade to add more",
			Resource: string(quotaErr.Kind),
			Current:  &current,
			Limit:    &limit,
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
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrConflict),
		errors.Is(err, weddingdomain.ErrSlugTaken),
		errors.Is(err, seatingdomain.ErrStaleAssignment):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: conflictMessage(err),
		}
	case errors.Is(err, ratelimit.ErrRateLimited):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "rate_limited",
			Message: "too many requests, retry later",
		}
	case errors.Is(err, weddingdomain.ErrUnmappedPlan):
		return http.StatusUnprocessableEntity, errorPayload{
			Type:    "unmapped_plan",
			Message: "unknown provider plan reference",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrServiceUnavailable),
		errors.Is(err, quotadomain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "service_unavailable",
			Message: "service unavailable",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, seatingdomain.ErrStaleAssignment):
		return "assignment changed concurrently, retry"
	case errors.Is(err, weddingdomain.ErrSlugTaken):
		return "slug already taken"
	default:
		return "conflict"
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
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, plan.ErrUnknownResourceKind),
		errors.Is(err, guestdomain.ErrInvalidRSVP):
		return true
	case isWeddingValidationError(err),
		isTaskValidationError(err),
		isBudgetLineValidationError(err),
		isVendorValidationError(err),
		isVenueValidationError(err),
		isGuestValidationError(err),
		isSeatingValidationError(err),
		isQuotaValidationError(err):
		return true
	default:
		return false
	}
}

func isWeddingValidationError(err error) bool {
	switch err {
	case weddingdomain.ErrInvalidCoupleNames,
		weddingdomain.ErrInvalidSlug,
		weddingdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isTaskValidationError(err error) bool {
	switch err {
	case taskdomain.ErrInvalidWedding,
		taskdomain.ErrInvalidTitle,
		taskdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isBudgetLineValidationError(err error) bool {
	switch err {
	case budgetlinedomain.ErrInvalidWedding,
		budgetlinedomain.ErrInvalidCategory,
		budgetlinedomain.ErrInvalidAmount,
		budgetlinedomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isVendorValidationError(err error) bool {
	switch err {
	case vendordomain.ErrInvalidWedding,
		vendordomain.ErrInvalidName,
		vendordomain.ErrInvalidQuote,
		vendordomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isVenueValidationError(err error) bool {
	switch err {
	case venuedomain.ErrInvalidWedding,
		venuedomain.ErrInvalidName,
		venuedomain.ErrInvalidCapacity,
		venuedomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isGuestValidationError(err error) bool {
	switch err {
	case guestdomain.ErrInvalidWedding,
		guestdomain.ErrInvalidName,
		guestdomain.ErrInvalidPartySize,
		guestdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isSeatingValidationError(err error) bool {
	switch err {
	case seatingdomain.ErrInvalidWedding,
		seatingdomain.ErrInvalidName,
		seatingdomain.ErrInvalidCapacity,
		seatingdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isQuotaValidationError(err error) bool {
	return errors.Is(err, quotadomain.ErrInvalidWedding)
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, weddingdomain.ErrNotFound),
		errors.Is(err, taskdomain.ErrNotFound),
		errors.Is(err, budgetlinedomain.ErrNotFound),
		errors.Is(err, vendordomain.ErrNotFound),
		errors.Is(err, venuedomain.ErrNotFound),
		errors.Is(err, guestdomain.ErrNotFound),
		errors.Is(err, seatingdomain.ErrTableNotFound),
		errors.Is(err, seatingdomain.ErrGuestNotFound),
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
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}

// classifyErrorForLog buckets errors for the request log without
// leaking internals into log cardinality.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}

	var quotaErr *quotadomain.QuotaExceededError
	switch {
	case errors.As(err, &quotaErr):
		return "quota_exceeded", string(quotaErr.Kind)
	case asValidationErrors(err) != nil, isValidationError(err):
		return "validation_error", validationErrorCode(err)
	case isNotFoundError(err):
		return "not_found", "not_found"
	case errors.Is(err, seatingdomain.ErrStaleAssignment):
		return "conflict", "stale_assignment"
	case errors.Is(err, ratelimit.ErrRateLimited):
		return "rate_limited", "rate_limited"
	case errors.Is(err, quotadomain.ErrStoreUnavailable):
		return "service_unavailable", "store_unavailable"
	default:
		return "internal_error", "internal_error"
	}
}
