package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	"github.com/vowsuite/vowsuite/internal/ratelimit"
	seatingdomain "github.com/vowsuite/vowsuite/internal/seating/domain"
	taskdomain "github.com/vowsuite/vowsuite/internal/task/domain"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
)

func TestMapError_QuotaExceeded(t *testing.T) {
	status, payload := mapError(&quotadomain.QuotaExceededError{
		Kind:    "venues",
		Current: 3,
		Limit:   3,
	})

	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "quota_exceeded", payload.Type)
	assert.Equal(t, "venues", payload.Resource)
	assert.Equal(t, int64(3), *payload.Current)
	assert.Equal(t, int64(3), *payload.Limit)
}

func TestMapError_StatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		typ    string
	}{
		{"validation sentinel", taskdomain.ErrInvalidTitle, http.StatusBadRequest, "validation_error"},
		{"field validation", newValidationError("title", "invalid_title", "title required"), http.StatusBadRequest, "validation_error"},
		{"slug conflict", weddingdomain.ErrSlugTaken, http.StatusConflict, "conflict"},
		{"stale assignment", seatingdomain.ErrStaleAssignment, http.StatusConflict, "conflict"},
		{"unmapped plan", weddingdomain.ErrUnmappedPlan, http.StatusUnprocessableEntity, "unmapped_plan"},
		{"rate limited", ratelimit.ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{"not found", taskdomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"store down", quotadomain.ErrStoreUnavailable, http.StatusServiceUnavailable, "service_unavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := mapError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.typ, payload.Type)
		})
	}
}

func TestMapError_ValidationPayloadCarriesField(t *testing.T) {
	_, payload := mapError(newValidationError("wedding_id", "missing_wedding_id", "missing X-Wedding-ID header"))

	assert.Len(t, payload.Errors, 1)
	assert.Equal(t, "wedding_id", payload.Errors[0].Field)
	assert.Equal(t, "missing_wedding_id", payload.Errors[0].Code)
}

func TestClassifyErrorForLog(t *testing.T) {
	class, code := classifyErrorForLog(&quotadomain.QuotaExceededError{Kind: "guests"})
	assert.Equal(t, "quota_exceeded", class)
	assert.Equal(t, "guests", code)

	class, _ = classifyErrorForLog(seatingdomain.ErrStaleAssignment)
	assert.Equal(t, "conflict", class)

	class, _ = classifyErrorForLog(errors.New("boom"))
	assert.Equal(t, "internal_error", class)
}
