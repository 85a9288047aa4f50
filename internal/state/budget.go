package state

import (
	"context"
	"sync"
	"time"

	"github.com/vowsync/vowsync/internal/api"
	"github.com/vowsync/vowsync/internal/models"
)

// BudgetAPI is the slice of the REST client the budget store depends on.
type BudgetAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string, predefinedID *int64, estimatedBudget float64) (models.Category, error)
	ListExpenses(ctx context.Context, categoryID int64) ([]models.Expense, error)
	CreateExpense(ctx context.Context, categoryID int64, title string, amount float64) (models.Expense, error)
	ListPredefinedCategories(ctx context.Context) ([]models.PredefinedCategory, error)
}

// BudgetStore owns budget categories, their expenses, and the read-only
// predefined category list. Spent amounts are never stored; they are always
// summed from expenses on read.
type BudgetStore struct {
	api BudgetAPI

	mu         sync.Mutex
	rev        revisions
	categories []models.Category
	predefined []models.PredefinedCategory
}

// NewBudgetStore creates an empty budget store over the given API.
func NewBudgetStore(api BudgetAPI) *BudgetStore {
	return &BudgetStore{api: api}
}

// FetchCategories replaces the category collection wholesale. Per-category
// expense lists reset to empty; expenses are fetched separately per category.
func (s *BudgetStore) FetchCategories(ctx context.Context) error {
	s.mu.Lock()
	seq, ver := s.rev.begin()
	s.mu.Unlock()

	cats, err := s.api.ListCategories(ctx)
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
	for i := range cats {
		cats[i].Expenses = nil
	}
	s.categories = cats
	return nil
}

// CreateCategory posts a new category and appends it locally with an empty
// expense list.
func (s *BudgetStore) CreateCategory(ctx context.Context, name string, predefinedID *int64, estimatedBudget float64) (models.Category, error) {
	if estimatedBudget < 0 {
		return models.Category{}, &api.ValidationError{Field: "estimatedBudget", Reason: "must not be negative"}
	}

	created, err := s.api.CreateCategory(ctx, name, predefinedID, estimatedBudget)
	if err != nil {
		return models.Category{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.Category{}, err
	}

	created.Expenses = nil

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev.bump()
	s.categories = append(s.categories, created)
	return created, nil
}

// FetchExpenses replaces one category's expense collection wholesale.
// An unknown category is a no-op.
func (s *BudgetStore) FetchExpenses(ctx context.Context, categoryID int64) error {
	s.mu.Lock()
	seq, ver := s.rev.begin()
	s.mu.Unlock()

	exps, err := s.api.ListExpenses(ctx, categoryID)
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
	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			s.categories[i].Expenses = exps
			return nil
		}
	}
	return nil
}

// CreateExpense records an expense under a category and appends it locally.
func (s *BudgetStore) CreateExpense(ctx context.Context, categoryID int64, title string, amount float64) (models.Expense, error) {
	if amount < 0 {
		return models.Expense{}, &api.ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	created, err := s.api.CreateExpense(ctx, categoryID, title, amount)
	if err != nil {
		return models.Expense{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.Expense{}, err
	}

	now := time.Now()
	created.CategoryID = categoryID
	created.CreatedAt = now
	created.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev.bump()
	for i := range s.categories {
		if s.categories[i].ID == categoryID {
			s.categories[i].Expenses = append(s.categories[i].Expenses, created)
			break
		}
	}
	return created, nil
}

// FetchPredefined replaces the predefined category reference list.
func (s *BudgetStore) FetchPredefined(ctx context.Context) error {
	s.mu.Lock()
	seq, ver := s.rev.begin()
	s.mu.Unlock()

	cats, err := s.api.ListPredefinedCategories(ctx)
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
	s.predefined = cats
	return nil
}

// Categories returns all categories in insertion order.
func (s *BudgetStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CategoryByID returns one category and whether it exists.
func (s *BudgetStore) CategoryByID(categoryID int64) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range s.categories {
		if cat.ID == categoryID {
			return cat, true
		}
	}
	return models.Category{}, false
}

// PredefinedCategories returns the reference list.
func (s *BudgetStore) PredefinedCategories() []models.PredefinedCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PredefinedCategory, len(s.predefined))
	copy(out, s.predefined)
	return out
}

// PredefinedName resolves the display name of a predefined category.
func (s *BudgetStore) PredefinedName(predefinedID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range s.predefined {
		if cat.ID == predefinedID {
			return cat.Name, true
		}
	}
	return "", false
}

// TotalBudget sums the estimated budgets across all categories.
func (s *BudgetStore) TotalBudget() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, cat := range s.categories {
		total += cat.EstimatedBudget
	}
	return total
}

// TotalSpent sums every expense amount across all categories. Always
// recomputed from the expense lists.
func (s *BudgetStore) TotalSpent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, cat := range s.categories {
		total += spent(cat)
	}
	return total
}

// CategorySpent sums the expense amounts of one category.
func (s *BudgetStore) CategorySpent(categoryID int64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range s.categories {
		if cat.ID == categoryID {
			return spent(cat)
		}
	}
	return 0
}

// Remaining reports the unspent budget of one category. When spending has
// passed the estimate, exceeded is true and amount carries the overrun
// magnitude; the result is never negative.
func (s *BudgetStore) Remaining(categoryID int64) (amount float64, exceeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range s.categories {
		if cat.ID == categoryID {
			sp := spent(cat)
			if sp > cat.EstimatedBudget {
				return sp - cat.EstimatedBudget, true
			}
			return cat.EstimatedBudget - sp, false
		}
	}
	return 0, false
}

func spent(cat models.Category) float64 {
	var total float64
	for _, exp := range cat.Expenses {
		total += exp.Amount
	}
	return total
}
