package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vowsuite/vowsuite/internal/plan"
	quotadomain "github.com/vowsuite/vowsuite/internal/quota/domain"
	"github.com/vowsuite/vowsuite/internal/weddingctx"
)

// CheckLimit answers "may I create one more X" without creating
// anything. Clients use it to grey out buttons before the user hits
// the ceiling.
func (s *Server) CheckLimit(c *gin.Context) {
	weddingID, ok := weddingctx.WeddingIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, newValidationError("wedding_id", "missing_wedding_id", "X-Wedding-ID header required"))
		return
	}

	kind, err := plan.ParseResourceKind(strings.TrimSpace(c.Param("resource")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tier, err := s.weddingSvc.Tier(c.Request.Context(), weddingID.String())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.quotaSvc.CheckLimit(c.Request.Context(), quotadomain.CheckLimitRequest{
		WeddingID: weddingID,
		Tier:      tier,
		Kind:      kind,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"resource":  string(kind),
		"tier":      string(tier),
		"allowed":   resp.Allowed,
		"current":   resp.Current,
		"limit":     int64(resp.Limit),
		"unlimited": resp.Limit.IsUnlimited(),
	}})
}
