package domain

import (
	"context"
	"errors"
	"time"

	"github.com/vowsuite/vowsuite/internal/plan"
)

type CreateWeddingRequest struct {
	CoupleNames string
	Slug        string
	WeddingDate *time.Time
}

type GetWeddingRequest struct {
	ID   string
	Slug string
}

// ApplyPlanEventRequest is an inbound payment-webhook event. Only the
// mapping from provider plan ref to tier is resolved here; provider
// client logic lives outside this system.
type ApplyPlanEventRequest struct {
	WeddingID       string
	Provider        string
	ProviderPlanRef string
}

type Service interface {
	Create(context.Context, CreateWeddingRequest) (Wedding, error)
	Get(context.Context, GetWeddingRequest) (Wedding, error)
	List(context.Context) ([]Wedding, error)
	// Tier resolves the wedding's current tier, normalized against the
	// closed tier set.
	Tier(ctx context.Context, id string) (plan.Tier, error)
	ApplyPlanEvent(context.Context, ApplyPlanEventRequest) (Wedding, error)
}

var (
	ErrInvalidCoupleNames = errors.New("invalid_couple_names")
	ErrInvalidSlug        = errors.New("invalid_slug")
	ErrSlugTaken          = errors.New("slug_taken")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrUnmappedPlan       = errors.New("unmapped_plan")
)
