package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"todolist_api/internal/domain"
	"todolist_api/internal/repository"
	"todolist_api/internal/service"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      bool    `json:"status"`
	DueDate     *string `json:"due_date"`
}

// parseTaskPatch decodes a partial update, keeping an absent key
// distinct from an explicit null: null clears the field.
func parseTaskPatch(raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	var patch domain.TaskPatch

	if v, ok := raw["title"]; ok {
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			return patch, errors.New("invalid title")
		}
		if s == nil {
			// a null title is rejected downstream as missing
			empty := ""
			s = &empty
		}
		patch.Title = s
	}
	if v, ok := raw["description"]; ok {
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			return patch, errors.New("invalid description")
		}
		if s == nil {
			empty := ""
			s = &empty
		}
		patch.Description = s
	}
	if v, ok := raw["status"]; ok {
		var b *bool
		if err := json.Unmarshal(v, &b); err != nil || b == nil {
			return patch, errors.New("invalid status")
		}
		patch.Status = b
	}
	if v, ok := raw["due_date"]; ok {
		patch.SetDueDate = true
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			return patch, errors.New("invalid due_date")
		}
		if s != nil && *s != "" {
			due, err := parseDueDate(*s)
			if err != nil {
				return patch, errors.New("invalid due_date")
			}
			patch.DueDate = due
		}
	}
	return patch, nil
}

// parseDueDate accepts both plain dates and RFC3339 timestamps.
func parseDueDate(s string) (*time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks returns all tasks owned by the session user.
func (h *Handler) ListTasks(c *gin.Context) {
	su, ok := getSessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), su.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask adds a task for the session user. The owner is never
// taken from the request body.
func (h *Handler) CreateTask(c *gin.Context) {
	su, ok := getSessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req createTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bad request"})
		return
	}

	t := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid due_date"})
			return
		}
		t.DueDate = due
	}

	created, err := h.Tasks.Create(c.Request.Context(), su.ID, t)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTask merges the supplied fields into the task.
func (h *Handler) UpdateTask(c *gin.Context) {
	su, ok := getSessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task id"})
		return
	}

	var raw map[string]json.RawMessage
	if err := c.BindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bad request"})
		return
	}

	patch, err := parseTaskPatch(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updated, err := h.Tasks.Update(c.Request.Context(), id, su.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		case errors.Is(err, service.ErrTitleRequired):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTask removes the task.
func (h *Handler) DeleteTask(c *gin.Context) {
	su, ok := getSessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid task id"})
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id, su.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
