package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	budgetlinedomain "github.com/vowsuite/vowsuite/internal/budgetline/domain"
)

type createBudgetLineRequest struct {
	Category       string `json:"category"`
	VendorName     string `json:"vendor_name"`
	EstimatedCents int64  `json:"estimated_cents"`
	ActualCents    int64  `json:"actual_cents"`
}

type updateBudgetLineRequest struct {
	Category       *string `json:"category"`
	VendorName     *string `json:"vendor_name"`
	EstimatedCents *int64  `json:"estimated_cents"`
	ActualCents    *int64  `json:"actual_cents"`
	Paid           *bool   `json:"paid"`
}

func (s *Server) CreateBudgetLine(c *gin.Context) {
	var req createBudgetLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.budgetLineSvc.Create(c.Request.Context(), budgetlinedomain.CreateBudgetLineRequest{
		Category:       strings.TrimSpace(req.Category),
		VendorName:     strings.TrimSpace(req.VendorName),
		EstimatedCents: req.EstimatedCents,
		ActualCents:    req.ActualCents,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBudgetLines(c *gin.Context) {
	resp, err := s.budgetLineSvc.List(c.Request.Context(), budgetlinedomain.ListBudgetLineRequest{
		Category: strings.TrimSpace(c.Query("category")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBudgetLine(c *gin.Context) {
	resp, err := s.budgetLineSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateBudgetLine(c *gin.Context) {
	var req updateBudgetLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.budgetLineSvc.Update(c.Request.Context(), budgetlinedomain.UpdateBudgetLineRequest{
		ID:             c.Param("id"),
		Category:       req.Category,
		VendorName:     req.VendorName,
		EstimatedCents: req.EstimatedCents,
		ActualCents:    req.ActualCents,
		Paid:           req.Paid,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteBudgetLine(c *gin.Context) {
	if err := s.budgetLineSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
