package state

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/vowsync/vowsync/internal/models"
)

// TodoAPI is the slice of the REST client the todo store depends on.
type TodoAPI interface {
	ListTodos(ctx context.Context) ([]models.ToDoItem, error)
	CreateTodo(ctx context.Context, title string, dueDate *time.Time) (models.ToDoItem, error)
	CompleteTodo(ctx context.Context, todoID string) error
	DeleteTodo(ctx context.Context, todoID string) error
	SetTodoDueDate(ctx context.Context, todoID string, dueDate *time.Time) error
}

// TodoStore owns the checklist collection, in insertion order.
type TodoStore struct {
	api TodoAPI

	mu    sync.Mutex
	rev   revisions
	items []models.ToDoItem
}

// NewTodoStore creates an empty todo store over the given API.
func NewTodoStore(api TodoAPI) *TodoStore {
	return &TodoStore{api: api}
}

// Fetch replaces the whole collection with the server's. A result that was
// superseded by a later fetch or a local mutation is discarded.
func (s *TodoStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	seq, ver := s.rev.begin()
	s.mu.Unlock()

	items, err := s.api.ListTodos(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.rev.current(seq, ver) {
		return nil
	}
	s.items = items
	return nil
}

// Create posts a new item and, on success, appends the server's record as
// not completed with fresh timestamps. On failure local state is untouched.
func (s *TodoStore) Create(ctx context.Context, title string, dueDate *time.Time) (models.ToDoItem, error) {
	created, err := s.api.CreateTodo(ctx, title, dueDate)
	if err != nil {
		return models.ToDoItem{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.ToDoItem{}, err
	}

	now := time.Now()
	item := models.ToDoItem{
		ID:        created.ID,
		Title:     created.Title,
		DueDate:   created.DueDate,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev.bump()
	s.items = append(s.items, item)
	return item, nil
}

// ToggleComplete flips the completed flag of one item. Unknown IDs are a
// local no-op after the server call succeeds.
func (s *TodoStore) ToggleComplete(ctx context.Context, todoID string) error {
	if err := s.api.CompleteTodo(ctx, todoID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == todoID {
			s.rev.bump()
			s.items[i].Completed = !s.items[i].Completed
			s.items[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// SetDueDate sets or, with nil, clears an item's deadline.
func (s *TodoStore) SetDueDate(ctx context.Context, todoID string, dueDate *time.Time) error {
	if err := s.api.SetTodoDueDate(ctx, todoID, dueDate); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == todoID {
			s.rev.bump()
			s.items[i].DueDate = dueDate
			s.items[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// Remove deletes an item on the server, then locally.
func (s *TodoStore) Remove(ctx context.Context, todoID string) error {
	if err := s.api.DeleteTodo(ctx, todoID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == todoID {
			s.rev.bump()
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// List returns the collection in insertion order.
func (s *TodoStore) List() []models.ToDoItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ToDoItem, len(s.items))
	copy(out, s.items)
	return out
}

// ByID returns one item and whether it exists.
func (s *TodoStore) ByID(todoID string) (models.ToDoItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == todoID {
			return item, true
		}
	}
	return models.ToDoItem{}, false
}

// WithDueDate returns the items that have a deadline set.
func (s *TodoStore) WithDueDate() []models.ToDoItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ToDoItem
	for _, item := range s.items {
		if item.DueDate != nil {
			out = append(out, item)
		}
	}
	return out
}

// Completed returns the checked-off items.
func (s *TodoStore) Completed() []models.ToDoItem {
	return s.filter(true)
}

// Incomplete returns the items still open.
func (s *TodoStore) Incomplete() []models.ToDoItem {
	return s.filter(false)
}

func (s *TodoStore) filter(completed bool) []models.ToDoItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ToDoItem
	for _, item := range s.items {
		if item.Completed == completed {
			out = append(out, item)
		}
	}
	return out
}

// CompletionPercentage is round(100 * completed / total), 0 for an empty list.
func (s *TodoStore) CompletionPercentage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return 0
	}
	completed := 0
	for _, item := range s.items {
		if item.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(s.items))))
}
