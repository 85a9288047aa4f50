package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vowsync/vowsync/internal/models"
	"github.com/vowsync/vowsync/internal/storage"
)

// dueDateLayout is how due dates are stored and served on the wire.
const dueDateLayout = "2006-01-02 15:04:05"

// ListTodos returns the user's checklist in insertion order.
func (s *SQLiteStore) ListTodos(ctx context.Context, userID string) ([]models.ToDoItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, completed, due_date, created_at, updated_at
		 FROM todos WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	items := make([]models.ToDoItem, 0)
	for rows.Next() {
		var (
			item      models.ToDoItem
			completed int
			due       sql.NullString
			created   int64
			updated   int64
		)
		if err := rows.Scan(&item.ID, &item.Title, &completed, &due, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		item.Completed = completed == 1
		item.CreatedAt = time.Unix(created, 0)
		item.UpdatedAt = time.Unix(updated, 0)
		if due.Valid && due.String != "" {
			if t, err := time.ParseInLocation(dueDateLayout, due.String, time.Local); err == nil {
				item.DueDate = &t
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreateTodo persists a new item, generating its ID and timestamps.
func (s *SQLiteStore) CreateTodo(ctx context.Context, userID string, item *models.ToDoItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	var due any
	if item.DueDate != nil {
		due = item.DueDate.Format(dueDateLayout)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (id, user_id, title, completed, due_date, created_at, updated_at)
		 VALUES (?, ?, ?, 0, ?, ?, ?)`,
		item.ID, userID, item.Title, due, now.Unix(), now.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}
	return nil
}

// ToggleTodoComplete flips an item's completed flag.
func (s *SQLiteStore) ToggleTodoComplete(ctx context.Context, userID, todoID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE todos SET completed = 1 - completed, updated_at = ? WHERE id = ? AND user_id = ?",
		time.Now().Unix(), todoID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return requireRow(res)
}

// SetTodoDueDate sets or, with nil, clears an item's deadline.
func (s *SQLiteStore) SetTodoDueDate(ctx context.Context, userID, todoID string, dueDate *time.Time) error {
	var due any
	if dueDate != nil {
		due = dueDate.Format(dueDateLayout)
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE todos SET due_date = ?, updated_at = ? WHERE id = ? AND user_id = ?",
		due, time.Now().Unix(), todoID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo due date: %w", err)
	}
	return requireRow(res)
}

// DeleteTodo removes an item.
func (s *SQLiteStore) DeleteTodo(ctx context.Context, userID, todoID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM todos WHERE id = ? AND user_id = ?", todoID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return requireRow(res)
}

// requireRow converts a zero-row result into storage.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
