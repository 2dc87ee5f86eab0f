package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/vowsuite/vowsuite/internal/weddingctx"
)

const HeaderWedding = "X-Wedding-ID"

// WeddingContext resolves the active wedding from the X-Wedding-ID
// header and stores it in the request context. Scoped routes refuse to
// run without it.
func (s *Server) WeddingContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderWedding))
		if raw == "" {
			AbortWithError(c, newValidationError("wedding_id", "missing_wedding_id", "X-Wedding-ID header required"))
			return
		}

		id, err := snowflake.ParseString(raw)
		if err != nil || id == 0 {
			AbortWithError(c, newValidationError("wedding_id", "invalid_wedding_id", "invalid X-Wedding-ID header"))
			return
		}

		ctx := weddingctx.WithWeddingID(c.Request.Context(), int64(id))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
