package api

import (
	"context"
	"net/http"
	"time"

	"github.com/vowsync/vowsync/internal/models"
)

// wireTodo is the shape todos take on the wire. Completed travels as 0/1.
type wireTodo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed int    `json:"completed"`
	DueDate   string `json:"due_date,omitempty"`
}

func (w wireTodo) model() models.ToDoItem {
	item := models.ToDoItem{
		ID:        w.ID,
		Title:     w.Title,
		Completed: w.Completed == 1,
	}
	if w.DueDate != "" {
		if due, err := time.ParseInLocation(DateTimeLayout, w.DueDate, time.Local); err == nil {
			item.DueDate = &due
		}
	}
	return item
}

// ListTodos fetches the full checklist.
func (c *Client) ListTodos(ctx context.Context) ([]models.ToDoItem, error) {
	var out struct {
		Todos []wireTodo `json:"todos"`
	}
	if err := c.do(ctx, http.MethodGet, "/todos/todos", true, nil, &out); err != nil {
		return nil, err
	}
	items := make([]models.ToDoItem, len(out.Todos))
	for i, w := range out.Todos {
		items[i] = w.model()
	}
	return items, nil
}

// CreateTodo creates a checklist entry and returns the server's record,
// which carries the issued ID.
func (c *Client) CreateTodo(ctx context.Context, title string, dueDate *time.Time) (models.ToDoItem, error) {
	req := struct {
		Title   string `json:"title"`
		DueDate string `json:"dueDate,omitempty"`
	}{Title: title}
	if dueDate != nil {
		req.DueDate = dueDate.Format(DateTimeLayout)
	}

	var out struct {
		Todo wireTodo `json:"todo"`
	}
	if err := c.do(ctx, http.MethodPost, "/todos/todos", true, req, &out); err != nil {
		return models.ToDoItem{}, err
	}
	return out.Todo.model(), nil
}

// CompleteTodo toggles the completed flag of a todo on the server.
func (c *Client) CompleteTodo(ctx context.Context, todoID string) error {
	return c.do(ctx, http.MethodPatch, "/todos/todos/"+todoID+"/complete", true, nil, nil)
}

// DeleteTodo removes a todo on the server.
func (c *Client) DeleteTodo(ctx context.Context, todoID string) error {
	return c.do(ctx, http.MethodDelete, "/todos/todos/"+todoID, true, nil, nil)
}

// SetTodoDueDate sets or, with a nil date, clears a todo's deadline.
func (c *Client) SetTodoDueDate(ctx context.Context, todoID string, dueDate *time.Time) error {
	req := struct {
		DueDate string `json:"dueDate,omitempty"`
	}{}
	if dueDate != nil {
		req.DueDate = dueDate.Format(DateTimeLayout)
	}
	return c.do(ctx, http.MethodPatch, "/todos/todos/"+todoID+"/due-date", true, req, nil)
}
