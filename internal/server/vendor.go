package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	vendordomain "github.com/vowsuite/vowsuite/internal/vendors/domain"
)

type createVendorRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	QuoteCents   int64  `json:"quote_cents"`
}

type updateVendorRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	QuoteCents   *int64  `json:"quote_cents"`
	Booked       *bool   `json:"booked"`
}

func (s *Server) CreateVendor(c *gin.Context) {
	var req createVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vendorSvc.Create(c.Request.Context(), vendordomain.CreateVendorRequest{
		Name:         strings.TrimSpace(req.Name),
		Category:     strings.TrimSpace(req.Category),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
		QuoteCents:   req.QuoteCents,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListVendors(c *gin.Context) {
	var query struct {
		Category string `form:"category"`
		Booked   *bool  `form:"booked"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vendorSvc.List(c.Request.Context(), vendordomain.ListVendorRequest{
		Category: strings.TrimSpace(query.Category),
		Booked:   query.Booked,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetVendor(c *gin.Context) {
	resp, err := s.vendorSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateVendor(c *gin.Context) {
	var req updateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vendorSvc.Update(c.Request.Context(), vendordomain.UpdateVendorRequest{
		ID:           c.Param("id"),
		Name:         req.Name,
		Category:     req.Category,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		QuoteCents:   req.QuoteCents,
		Booked:       req.Booked,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteVendor(c *gin.Context) {
	if err := s.vendorSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
