// Package domain defines the plan-quota policy: whether a wedding may
// create another row of a given resource kind.
package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/vowsuite/vowsuite/internal/plan"
)

// CheckLimitRequest identifies the tenant, its tier and the resource
// kind being created. The wedding ID is always explicit; the policy
// never resolves it ambiently.
type CheckLimitRequest struct {
	WeddingID snowflake.ID
	Tier      plan.Tier
	Kind      plan.ResourceKind
}

// CheckLimitResult reports the decision together with the figures a
// caller needs to build an upgrade prompt. Current is only counted for
// finite ceilings; unlimited ceilings short-circuit before any store
// read.
type CheckLimitResult struct {
	Allowed bool         `json:"allowed"`
	Current int64        `json:"current"`
	Limit   plan.Ceiling `json:"limit"`
}

// Service decides creation requests against the tier catalog.
//
// The check is advisory, not transactional: two concurrent creations
// that both pass at current == limit-1 will both insert, leaving the
// collection one row over its ceiling. That race is an accepted
// trade-off; the ceiling binds at creation time only and is never
// retroactively enforced.
type Service interface {
	// CheckLimit is read-only; the caller performs the insert itself
	// when allowed.
	CheckLimit(ctx context.Context, req CheckLimitRequest) (CheckLimitResult, error)
	// Enforce wraps CheckLimit and returns *QuotaExceededError when the
	// ceiling is reached.
	Enforce(ctx context.Context, req CheckLimitRequest) error
}

var (
	ErrInvalidWedding = errors.New("invalid_wedding")
	// ErrStoreUnavailable means the live count could not be read. The
	// policy fails closed: callers must deny, never allow, on this error.
	ErrStoreUnavailable = errors.New("store_unavailable")
)

// QuotaExceededError is surfaced to the end user as a plan-upgrade
// prompt, never as a generic failure.
type QuotaExceededError struct {
	Kind    plan.ResourceKind
	Current int64
	Limit   plan.Ceiling
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota_exceeded: %s %d/%d", e.Kind, e.Current, e.Limit)
}

// IsQuotaExceeded reports whether err carries a quota denial.
func IsQuotaExceeded(err error) bool {
	var qe *QuotaExceededError
	return errors.As(err, &qe)
}
