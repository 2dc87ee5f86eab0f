package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	venuedomain "github.com/vowsuite/vowsuite/internal/venue/domain"
)

type createVenueRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Capacity  int    `json:"capacity"`
	VisitDate string `json:"visit_date"`
}

type updateVenueRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Capacity    *int    `json:"capacity"`
	VisitDate   *string `json:"visit_date"`
	Shortlisted *bool   `json:"shortlisted"`
}

func (s *Server) CreateVenue(c *gin.Context) {
	var req createVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	visitDate, err := parseOptionalTime(req.VisitDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("visit_date", "invalid_visit_date", "invalid visit_date"))
		return
	}

	resp, err := s.venueSvc.Create(c.Request.Context(), venuedomain.CreateVenueRequest{
		Name:      strings.TrimSpace(req.Name),
		Address:   strings.TrimSpace(req.Address),
		Capacity:  req.Capacity,
		VisitDate: visitDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListVenues(c *gin.Context) {
	resp, err := s.venueSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetVenue(c *gin.Context) {
	resp, err := s.venueSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateVenue(c *gin.Context) {
	var req updateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	update := venuedomain.UpdateVenueRequest{
		ID:          c.Param("id"),
		Name:        req.Name,
		Address:     req.Address,
		Capacity:    req.Capacity,
		Shortlisted: req.Shortlisted,
	}
	if req.VisitDate != nil {
		visitDate, err := parseOptionalTime(*req.VisitDate, false)
		if err != nil {
			AbortWithError(c, newValidationError("visit_date", "invalid_visit_date", "invalid visit_date"))
			return
		}
		update.VisitDate = visitDate
	}

	resp, err := s.venueSvc.Update(c.Request.Context(), update)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteVenue(c *gin.Context) {
	if err := s.venueSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
