package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vowsync/vowsync/internal/models"
	"github.com/vowsync/vowsync/internal/storage"
)

// ListCategories returns the user's budget categories without their
// expense lists; expenses are listed separately per category.
func (s *SQLiteStore) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, estimated_budget, predefined_category_id
		 FROM categories WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	cats := make([]models.Category, 0)
	for rows.Next() {
		var (
			cat        models.Category
			predefined sql.NullInt64
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.EstimatedBudget, &predefined); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if predefined.Valid {
			id := predefined.Int64
			cat.PredefinedCategoryID = &id
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

// CreateCategory persists a new category, populating its ID.
func (s *SQLiteStore) CreateCategory(ctx context.Context, userID string, cat *models.Category) error {
	var predefined any
	if cat.PredefinedCategoryID != nil {
		predefined = *cat.PredefinedCategoryID
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (user_id, name, estimated_budget, predefined_category_id)
		 VALUES (?, ?, ?, ?)`,
		userID, cat.Name, cat.EstimatedBudget, predefined,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	cat.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read category id: %w", err)
	}
	return nil
}

// categoryOwned verifies the category exists and belongs to the user.
func (s *SQLiteStore) categoryOwned(ctx context.Context, userID string, categoryID int64) error {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM categories WHERE id = ? AND user_id = ?", categoryID, userID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

// ListExpenses returns one category's expenses in insertion order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, userID string, categoryID int64) ([]models.Expense, error) {
	if err := s.categoryOwned(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, amount, category_id, created_at, updated_at
		 FROM expenses WHERE category_id = ? ORDER BY id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	exps := make([]models.Expense, 0)
	for rows.Next() {
		var (
			exp     models.Expense
			created int64
			updated int64
		)
		if err := rows.Scan(&exp.ID, &exp.Title, &exp.Amount, &exp.CategoryID, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		exp.CreatedAt = time.Unix(created, 0)
		exp.UpdatedAt = time.Unix(updated, 0)
		exps = append(exps, exp)
	}
	return exps, rows.Err()
}

// CreateExpense persists a new expense, populating its ID and timestamps.
func (s *SQLiteStore) CreateExpense(ctx context.Context, userID string, exp *models.Expense) error {
	if err := s.categoryOwned(ctx, userID, exp.CategoryID); err != nil {
		return err
	}

	now := time.Now()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (category_id, title, amount, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		exp.CategoryID, exp.Title, exp.Amount, now.Unix(), now.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	exp.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}
	return nil
}

// ListPredefinedCategories returns the seeded reference list.
func (s *SQLiteStore) ListPredefinedCategories(ctx context.Context) ([]models.PredefinedCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name FROM predefined_categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query predefined categories: %w", err)
	}
	defer rows.Close()

	cats := make([]models.PredefinedCategory, 0)
	for rows.Next() {
		var cat models.PredefinedCategory
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("failed to scan predefined category: %w", err)
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}
