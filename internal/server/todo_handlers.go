package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vowsync/vowsync/internal/models"
	"github.com/vowsync/vowsync/internal/storage"
)

// dueDateLayout is the wire format for due dates.
const dueDateLayout = "2006-01-02 15:04:05"

// todoResponse is the wire shape of a todo. Completed travels as 0/1, a
// legacy of the SQLite column the original backend exposed directly.
type todoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed int    `json:"completed"`
	DueDate   string `json:"due_date,omitempty"`
}

func toTodoResponse(item models.ToDoItem) todoResponse {
	resp := todoResponse{
		ID:    item.ID,
		Title: item.Title,
	}
	if item.Completed {
		resp.Completed = 1
	}
	if item.DueDate != nil {
		resp.DueDate = item.DueDate.Format(dueDateLayout)
	}
	return resp
}

func (s *Server) listTodos(c *gin.Context) {
	items, err := s.store.ListTodos(c.Request.Context(), userID(c))
	if err != nil {
		slog.Error("list todos failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch todos"})
		return
	}

	resp := make([]todoResponse, len(items))
	for i, item := range items {
		resp[i] = toTodoResponse(item)
	}
	c.JSON(http.StatusOK, gin.H{"todos": resp})
}

func (s *Server) createTodo(c *gin.Context) {
	var req struct {
		Title   string `json:"title"`
		DueDate string `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	item := models.ToDoItem{Title: req.Title}
	if req.DueDate != "" {
		due, err := time.ParseInLocation(dueDateLayout, req.DueDate, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dueDate must be formatted as " + dueDateLayout})
			return
		}
		item.DueDate = &due
	}

	if err := s.store.CreateTodo(c.Request.Context(), userID(c), &item); err != nil {
		slog.Error("create todo failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create todo"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"todo": toTodoResponse(item)})
}

func (s *Server) completeTodo(c *gin.Context) {
	err := s.store.ToggleTodoComplete(c.Request.Context(), userID(c), c.Param("id"))
	if s.respondMutation(c, err, "complete todo") {
		c.JSON(http.StatusOK, gin.H{})
	}
}

func (s *Server) setTodoDueDate(c *gin.Context) {
	var req struct {
		DueDate string `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var due *time.Time
	if req.DueDate != "" {
		parsed, err := time.ParseInLocation(dueDateLayout, req.DueDate, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dueDate must be formatted as " + dueDateLayout})
			return
		}
		due = &parsed
	}

	err := s.store.SetTodoDueDate(c.Request.Context(), userID(c), c.Param("id"), due)
	if s.respondMutation(c, err, "set due date") {
		c.JSON(http.StatusOK, gin.H{})
	}
}

func (s *Server) deleteTodo(c *gin.Context) {
	err := s.store.DeleteTodo(c.Request.Context(), userID(c), c.Param("id"))
	if s.respondMutation(c, err, "delete todo") {
		c.JSON(http.StatusOK, gin.H{})
	}
}

// respondMutation writes the error response for a storage mutation, if
// any. It reports whether the caller should write the success body.
func (s *Server) respondMutation(c *gin.Context, err error, op string) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		slog.Error(op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + op})
	}
	return false
}
