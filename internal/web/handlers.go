package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyloop/studyloop/internal/core"
)

type generateRequest struct {
	Topic string `json:"topic"`
}

type createRequest struct {
	Title     string `json:"title"`
	Topic     string `json:"topic"`
	Completed *bool  `json:"completed"`
}

type editRequest struct {
	Title string `json:"title"`
}

type toggleRequest struct {
	Completed *bool `json:"completed"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := s.service.Generate(c.Request.Context(), c.GetString(userKey), req.Topic)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tasks)
}

func (s *Server) handleList(c *gin.Context) {
	tasks, err := s.service.List(c.Request.Context(), c.GetString(userKey))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleCreate(c *gin.Context) {
	var req createRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	task, err := s.service.Create(c.Request.Context(), c.GetString(userKey), req.Title, req.Topic, completed)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (s *Server) handleEdit(c *gin.Context) {
	var req editRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := s.service.EditTitle(c.Request.Context(), c.GetString(userKey), c.Param("id"), req.Title)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (s *Server) handleToggle(c *gin.Context) {
	var req toggleRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid completed value"})
		return
	}
	if req.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid completed value"})
		return
	}

	task, err := s.service.ToggleCompleted(c.Request.Context(), c.GetString(userKey), c.Param("id"), *req.Completed)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDelete(c *gin.Context) {
	task, err := s.service.Delete(c.Request.Context(), c.GetString(userKey), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// respondError maps service errors onto the HTTP taxonomy. Upstream causes
// are logged here and never echoed to the caller.
func (s *Server) respondError(c *gin.Context, err error) {
	var ve *core.ValidationError
	switch {
	case errors.Is(err, core.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"field": ve.Field, "message": ve.Message},
		})
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		log.Printf("Warning: request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
