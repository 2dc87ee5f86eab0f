package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
)

const headerRetryAfter = "Retry-After"

type planWebhookRequest struct {
	WeddingID string `json:"wedding_id"`
	PlanRef   string `json:"plan_ref"`
}

// HandlePlanWebhook applies a payment-provider plan change. The
// provider plan ref must be mapped ahead of time; unknown refs are
// rejected rather than guessed at.
func (s *Server) HandlePlanWebhook(c *gin.Context) {
	provider := strings.ToLower(strings.TrimSpace(c.Param("provider")))
	if provider == "" {
		AbortWithError(c, newValidationError("provider", "invalid_provider", "invalid provider"))
		return
	}

	if err := s.limiter.Allow(c.Request.Context(), provider, c.ClientIP()); err != nil {
		c.Header(headerRetryAfter, "1")
		AbortWithError(c, err)
		return
	}

	var req planWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(req.WeddingID) == "" {
		AbortWithError(c, newValidationError("wedding_id", "invalid_wedding_id", "wedding_id required"))
		return
	}
	if strings.TrimSpace(req.PlanRef) == "" {
		AbortWithError(c, newValidationError("plan_ref", "invalid_plan_ref", "plan_ref required"))
		return
	}

	resp, err := s.weddingSvc.ApplyPlanEvent(c.Request.Context(), weddingdomain.ApplyPlanEventRequest{
		WeddingID:       strings.TrimSpace(req.WeddingID),
		Provider:        provider,
		ProviderPlanRef: strings.TrimSpace(req.PlanRef),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"wedding_id": resp.ID.String(),
		"tier":       resp.Tier,
	}})
}
