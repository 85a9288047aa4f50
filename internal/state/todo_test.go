package state

import (
	"context"
	"testing"
	"time"

	"github.com/vowsync/vowsync/internal/models"
)

// fakeTodoAPI returns canned data and lets tests hook individual calls.
type fakeTodoAPI struct {
	items      []models.ToDoItem
	listErr    error
	onList     func()
	createErr  error
	mutateErr  error
	nextID     string
	deletedIDs []string
}

func (f *fakeTodoAPI) ListTodos(ctx context.Context) ([]models.ToDoItem, error) {
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.ToDoItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeTodoAPI) CreateTodo(ctx context.Context, title string, dueDate *time.Time) (models.ToDoItem, error) {
	if f.createErr != nil {
		return models.ToDoItem{}, f.createErr
	}
	return models.ToDoItem{ID: f.nextID, Title: title, DueDate: dueDate}, nil
}

func (f *fakeTodoAPI) CompleteTodo(ctx context.Context, todoID string) error {
	return f.mutateErr
}

func (f *fakeTodoAPI) DeleteTodo(ctx context.Context, todoID string) error {
	if f.mutateErr == nil {
		f.deletedIDs = append(f.deletedIDs, todoID)
	}
	return f.mutateErr
}

func (f *fakeTodoAPI) SetTodoDueDate(ctx context.Context, todoID string, dueDate *time.Time) error {
	return f.mutateErr
}

func TestTodoFetchReplacesWholesale(t *testing.T) {
	api := &fakeTodoAPI{items: []models.ToDoItem{{ID: "1", Title: "book venue"}}}
	store := NewTodoStore(api)

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got := len(store.List()); got != 1 {
		t.Fatalf("List() len = %d, want 1", got)
	}

	// A second fetch replaces, never merges.
	api.items = []models.ToDoItem{{ID: "2", Title: "send invites"}, {ID: "3", Title: "cake tasting"}}
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	items := store.List()
	if len(items) != 2 || items[0].ID != "2" {
		t.Errorf("List() = %+v, want the replacement collection", items)
	}
}

func TestTodoFetchDiscardedAfterLocalMutation(t *testing.T) {
	api := &fakeTodoAPI{items: []models.ToDoItem{{ID: "1", Title: "stale"}}, nextID: "9"}
	store := NewTodoStore(api)

	// A create lands while the list response is still in flight. The
	// in-flight response is stale and must not clobber the new item.
	api.onList = func() {
		api.onList = nil
		if _, err := store.Create(context.Background(), "fresh", nil); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	items := store.List()
	if len(items) != 1 || items[0].Title != "fresh" {
		t.Errorf("List() = %+v, want only the locally created item", items)
	}
}

func TestTodoFetchDiscardedWhenSupersededByLaterFetch(t *testing.T) {
	api := &fakeTodoAPI{items: []models.ToDoItem{{ID: "old", Title: "old"}}}
	store := NewTodoStore(api)

	api.onList = func() {
		api.onList = nil
		api.items = []models.ToDoItem{{ID: "new", Title: "new"}}
		if err := store.Fetch(context.Background()); err != nil {
			t.Fatalf("inner Fetch() error = %v", err)
		}
	}

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	items := store.List()
	if len(items) != 1 || items[0].ID != "new" {
		t.Errorf("List() = %+v, want the later fetch's result to win", items)
	}
}

func TestTodoCreateAppendsIncomplete(t *testing.T) {
	api := &fakeTodoAPI{nextID: "42"}
	store := NewTodoStore(api)

	item, err := store.Create(context.Background(), "order flowers", nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if item.ID != "42" || item.Completed {
		t.Errorf("Create() = %+v, want id 42 and not completed", item)
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Error("Create() should stamp CreatedAt and UpdatedAt")
	}
	if got := len(store.List()); got != 1 {
		t.Errorf("List() len = %d, want 1", got)
	}
}

func TestTodoToggleComplete(t *testing.T) {
	api := &fakeTodoAPI{items: []models.ToDoItem{{ID: "1", Title: "a"}}}
	store := NewTodoStore(api)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := store.ToggleComplete(context.Background(), "1"); err != nil {
		t.Fatalf("ToggleComplete() error = %v", err)
	}
	if item, _ := store.ByID("1"); !item.Completed {
		t.Error("item should be completed after toggle")
	}

	if err := store.ToggleComplete(context.Background(), "1"); err != nil {
		t.Fatalf("ToggleComplete() error = %v", err)
	}
	if item, _ := store.ByID("1"); item.Completed {
		t.Error("item should be incomplete after second toggle")
	}

	// Unknown IDs are a local no-op, not an error.
	if err := store.ToggleComplete(context.Background(), "missing"); err != nil {
		t.Errorf("ToggleComplete(missing) error = %v, want nil", err)
	}
}

func TestTodoRemove(t *testing.T) {
	api := &fakeTodoAPI{items: []models.ToDoItem{{ID: "1"}, {ID: "2"}}}
	store := NewTodoStore(api)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := store.Remove(context.Background(), "1"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	items := store.List()
	if len(items) != 1 || items[0].ID != "2" {
		t.Errorf("List() = %+v, want only item 2", items)
	}
	if len(api.deletedIDs) != 1 || api.deletedIDs[0] != "1" {
		t.Errorf("server deletes = %v, want [1]", api.deletedIDs)
	}
}

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"empty list", 0, 0, 0},
		{"none done", 0, 4, 0},
		{"half done", 2, 4, 50},
		{"rounds to nearest", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"all done", 5, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []models.ToDoItem
			for i := 0; i < tt.total; i++ {
				items = append(items, models.ToDoItem{
					ID:        string(rune('a' + i)),
					Completed: i < tt.completed,
				})
			}
			api := &fakeTodoAPI{items: items}
			store := NewTodoStore(api)
			if err := store.Fetch(context.Background()); err != nil {
				t.Fatal(err)
			}
			if got := store.CompletionPercentage(); got != tt.want {
				t.Errorf("CompletionPercentage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTodoSelectors(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)
	api := &fakeTodoAPI{items: []models.ToDoItem{
		{ID: "1", Completed: true},
		{ID: "2", DueDate: &due},
		{ID: "3"},
	}}
	store := NewTodoStore(api)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := len(store.Completed()); got != 1 {
		t.Errorf("Completed() len = %d, want 1", got)
	}
	if got := len(store.Incomplete()); got != 2 {
		t.Errorf("Incomplete() len = %d, want 2", got)
	}
	if got := len(store.WithDueDate()); got != 1 {
		t.Errorf("WithDueDate() len = %d, want 1", got)
	}
	if _, ok := store.ByID("3"); !ok {
		t.Error("ByID(3) should find the item")
	}
	if _, ok := store.ByID("nope"); ok {
		t.Error("ByID(nope) should not find anything")
	}
}
