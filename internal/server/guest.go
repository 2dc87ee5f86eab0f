package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
	seatingdomain "github.com/vowsuite/vowsuite/internal/seating/domain"
	"github.com/vowsuite/vowsuite/pkg/db/pagination"
)

type createGuestRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Adults      int    `json:"adults"`
	Kids        int    `json:"kids"`
	RSVP        string `json:"rsvp"`
	DietaryNote string `json:"dietary_note"`
}

type updateGuestRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Adults      *int    `json:"adults"`
	Kids        *int    `json:"kids"`
	RSVP        *string `json:"rsvp"`
	DietaryNote *string `json:"dietary_note"`
}

type assignGuestRequest struct {
	// Empty clears the assignment.
	TableID string `json:"table_id"`
}

func (s *Server) CreateGuest(c *gin.Context) {
	var req createGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.guestSvc.Create(c.Request.Context(), guestdomain.CreateGuestRequest{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Adults:      req.Adults,
		Kids:        req.Kids,
		RSVP:        strings.TrimSpace(req.RSVP),
		DietaryNote: strings.TrimSpace(req.DietaryNote),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListGuests(c *gin.Context) {
	var query struct {
		pagination.Pagination
		RSVP       string `form:"rsvp"`
		Unassigned bool   `form:"unassigned"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.guestSvc.List(c.Request.Context(), guestdomain.ListGuestRequest{
		PageToken:  query.PageToken,
		PageSize:   int32(query.PageSize),
		RSVP:       strings.TrimSpace(query.RSVP),
		Unassigned: query.Unassigned,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetGuest(c *gin.Context) {
	resp, err := s.guestSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateGuest(c *gin.Context) {
	var req updateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.guestSvc.Update(c.Request.Context(), guestdomain.UpdateGuestRequest{
		ID:          c.Param("id"),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Adults:      req.Adults,
		Kids:        req.Kids,
		RSVP:        req.RSVP,
		DietaryNote: req.DietaryNote,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteGuest(c *gin.Context) {
	if err := s.guestSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) AssignGuest(c *gin.Context) {
	var req assignGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.seatingSvc.AssignGuest(c.Request.Context(), seatingdomain.AssignGuestRequest{
		GuestID: c.Param("id"),
		TableID: strings.TrimSpace(req.TableID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
