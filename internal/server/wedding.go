package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	weddingdomain "github.com/vowsuite/vowsuite/internal/wedding/domain"
)

type createWeddingRequest struct {
	CoupleNames string `json:"couple_names"`
	Slug        string `json:"slug"`
	WeddingDate string `json:"wedding_date"`
}

func (s *Server) CreateWedding(c *gin.Context) {
	var req createWeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	weddingDate, err := parseOptionalTime(req.WeddingDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("wedding_date", "invalid_wedding_date", "invalid wedding_date"))
		return
	}

	resp, err := s.weddingSvc.Create(c.Request.Context(), weddingdomain.CreateWeddingRequest{
		CoupleNames: strings.TrimSpace(req.CoupleNames),
		Slug:        strings.TrimSpace(req.Slug),
		WeddingDate: weddingDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListWeddings(c *gin.Context) {
	resp, err := s.weddingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetWedding(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	req := weddingdomain.GetWeddingRequest{ID: id}
	// slugs are never all digits, so a non-numeric id is a slug lookup
	if _, err := parseSnowflake(id); err != nil {
		req = weddingdomain.GetWeddingRequest{Slug: id}
	}

	resp, err := s.weddingSvc.Get(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
