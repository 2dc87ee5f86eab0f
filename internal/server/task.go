package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	taskdomain "github.com/vowsuite/vowsuite/internal/task/domain"
	"github.com/vowsuite/vowsuite/pkg/db/pagination"
)

type createTaskRequest struct {
	Title   string `json:"title"`
	Notes   string `json:"notes"`
	DueDate string `json:"due_date"`
}

type updateTaskRequest struct {
	Title   *string `json:"title"`
	Notes   *string `json:"notes"`
	DueDate *string `json:"due_date"`
	Done    *bool   `json:"done"`
}

func (s *Server) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	dueDate, err := parseOptionalTime(req.DueDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("due_date", "invalid_due_date", "invalid due_date"))
		return
	}

	resp, err := s.taskSvc.Create(c.Request.Context(), taskdomain.CreateTaskRequest{
		Title:   strings.TrimSpace(req.Title),
		Notes:   strings.TrimSpace(req.Notes),
		DueDate: dueDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListTasks(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Done *bool `form:"done"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.taskSvc.List(c.Request.Context(), taskdomain.ListTaskRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Done:      query.Done,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetTask(c *gin.Context) {
	resp, err := s.taskSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	update := taskdomain.UpdateTaskRequest{
		ID:    c.Param("id"),
		Title: req.Title,
		Notes: req.Notes,
		Done:  req.Done,
	}
	if req.DueDate != nil {
		dueDate, err := parseOptionalTime(*req.DueDate, false)
		if err != nil {
			AbortWithError(c, newValidationError("due_date", "invalid_due_date", "invalid due_date"))
			return
		}
		update.DueDate = dueDate
	}

	resp, err := s.taskSvc.Update(c.Request.Context(), update)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteTask(c *gin.Context) {
	if err := s.taskSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
