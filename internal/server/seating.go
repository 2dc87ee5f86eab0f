package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	seatingdomain "github.com/vowsuite/vowsuite/internal/seating/domain"
)

type createTableRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Shape    string `json:"shape"`
}

type updateTableRequest struct {
	Name     *string `json:"name"`
	Capacity *int    `json:"capacity"`
	Shape    *string `json:"shape"`
}

func (s *Server) CreateTable(c *gin.Context) {
	var req createTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.seatingSvc.CreateTable(c.Request.Context(), seatingdomain.CreateTableRequest{
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
		Shape:    strings.TrimSpace(req.Shape),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListTables(c *gin.Context) {
	resp, err := s.seatingSvc.ListTables(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetTable(c *gin.Context) {
	resp, err := s.seatingSvc.GetTable(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateTable(c *gin.Context) {
	var req updateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.seatingSvc.UpdateTable(c.Request.Context(), seatingdomain.UpdateTableRequest{
		ID:       c.Param("id"),
		Name:     req.Name,
		Capacity: req.Capacity,
		Shape:    req.Shape,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteTable(c *gin.Context) {
	if err := s.seatingSvc.DeleteTable(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
