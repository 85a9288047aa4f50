// Package storage provides abstractions for the reference backend's
// persistent data.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/vowsync/vowsync/internal/models"
)

// ErrNotFound is returned when a requested record does not exist (or does
// not belong to the requesting user).
var ErrNotFound = errors.New("record not found")

// Store is the persistence interface the HTTP handlers run against. All
// collection operations are scoped to one user; the abstraction allows
// swapping SQLite for another backend without touching the handlers.
type Store interface {
	// CreateUser persists a new account, populating ID and CreatedAt.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// ListTodos returns the user's checklist in insertion order.
	ListTodos(ctx context.Context, userID string) ([]models.ToDoItem, error)
	// CreateTodo persists a new item, populating its ID and timestamps.
	CreateTodo(ctx context.Context, userID string, item *models.ToDoItem) error
	// ToggleTodoComplete flips an item's completed flag.
	ToggleTodoComplete(ctx context.Context, userID, todoID string) error
	SetTodoDueDate(ctx context.Context, userID, todoID string, dueDate *time.Time) error
	DeleteTodo(ctx context.Context, userID, todoID string) error

	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	// CreateCategory persists a new category, populating its ID.
	CreateCategory(ctx context.Context, userID string, cat *models.Category) error
	ListExpenses(ctx context.Context, userID string, categoryID int64) ([]models.Expense, error)
	// CreateExpense persists a new expense, populating its ID. The category
	// must exist and belong to the user.
	CreateExpense(ctx context.Context, userID string, exp *models.Expense) error
	ListPredefinedCategories(ctx context.Context) ([]models.PredefinedCategory, error)

	ListGuests(ctx context.Context, userID string) ([]models.Guest, error)
	// CreateGuest persists a new guest, populating its ID.
	CreateGuest(ctx context.Context, userID string, guest *models.Guest) error

	// GetWeddingDetails returns the user's singleton record, ErrNotFound
	// when onboarding never happened.
	GetWeddingDetails(ctx context.Context, userID string) (*models.WeddingDetails, error)
	// UpsertWeddingDetails creates or replaces the singleton record.
	UpsertWeddingDetails(ctx context.Context, userID string, d *models.WeddingDetails) error

	// SearchVendors matches the seeded vendor directory against a free-text
	// query and an optional location filter.
	SearchVendors(ctx context.Context, query, location string) ([]models.Vendor, error)

	// Close releases any resources held by the store.
	Close() error
}
