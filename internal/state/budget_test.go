package state

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/vowsync/vowsync/internal/api"
	"github.com/vowsync/vowsync/internal/models"
)

type fakeBudgetAPI struct {
	categories []models.Category
	expenses   map[int64][]models.Expense
	predefined []models.PredefinedCategory
	nextID     int64
}

func (f *fakeBudgetAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeBudgetAPI) CreateCategory(ctx context.Context, name string, predefinedID *int64, estimatedBudget float64) (models.Category, error) {
	f.nextID++
	return models.Category{ID: f.nextID, Name: name, PredefinedCategoryID: predefinedID, EstimatedBudget: estimatedBudget}, nil
}

func (f *fakeBudgetAPI) ListExpenses(ctx context.Context, categoryID int64) ([]models.Expense, error) {
	return f.expenses[categoryID], nil
}

func (f *fakeBudgetAPI) CreateExpense(ctx context.Context, categoryID int64, title string, amount float64) (models.Expense, error) {
	f.nextID++
	return models.Expense{ID: f.nextID, CategoryID: categoryID, Title: title, Amount: amount}, nil
}

func (f *fakeBudgetAPI) ListPredefinedCategories(ctx context.Context) ([]models.PredefinedCategory, error) {
	return f.predefined, nil
}

// seededBudgetStore fetches two categories and their expenses:
// venue budgeted 1000 with 120+80 spent, flowers budgeted 100 with 150 spent.
func seededBudgetStore(t *testing.T) *BudgetStore {
	t.Helper()
	fake := &fakeBudgetAPI{
		categories: []models.Category{
			{ID: 1, Name: "Venue", EstimatedBudget: 1000},
			{ID: 2, Name: "Flowers", EstimatedBudget: 100},
		},
		expenses: map[int64][]models.Expense{
			1: {
				{ID: 10, CategoryID: 1, Title: "deposit", Amount: 120},
				{ID: 11, CategoryID: 1, Title: "tasting", Amount: 80},
			},
			2: {
				{ID: 12, CategoryID: 2, Title: "bouquets", Amount: 150},
			},
		},
	}
	store := NewBudgetStore(fake)
	ctx := context.Background()
	if err := store.FetchCategories(ctx); err != nil {
		t.Fatalf("FetchCategories() error = %v", err)
	}
	for _, id := range []int64{1, 2} {
		if err := store.FetchExpenses(ctx, id); err != nil {
			t.Fatalf("FetchExpenses(%d) error = %v", id, err)
		}
	}
	return store
}

func TestBudgetTotals(t *testing.T) {
	store := seededBudgetStore(t)

	if got := store.TotalBudget(); got != 1100 {
		t.Errorf("TotalBudget() = %v, want 1100", got)
	}
	if got := store.TotalSpent(); got != 350 {
		t.Errorf("TotalSpent() = %v, want 350", got)
	}
	if got := store.CategorySpent(1); got != 200 {
		t.Errorf("CategorySpent(1) = %v, want 200", got)
	}
	if got := store.CategorySpent(99); got != 0 {
		t.Errorf("CategorySpent(99) = %v, want 0", got)
	}
}

func TestBudgetRemaining(t *testing.T) {
	store := seededBudgetStore(t)

	amount, exceeded := store.Remaining(1)
	if exceeded || math.Abs(amount-800) > 0.001 {
		t.Errorf("Remaining(1) = (%v, %v), want (800, false)", amount, exceeded)
	}

	// Flowers is over budget: 150 spent against 100. The amount is the
	// overrun magnitude, never a negative remainder.
	amount, exceeded = store.Remaining(2)
	if !exceeded || math.Abs(amount-50) > 0.001 {
		t.Errorf("Remaining(2) = (%v, %v), want (50, true)", amount, exceeded)
	}
}

func TestBudgetSpentIsDerived(t *testing.T) {
	store := seededBudgetStore(t)

	// Recording an expense changes spent with no stored total anywhere.
	if _, err := store.CreateExpense(context.Background(), 1, "band", 300); err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}
	if got := store.CategorySpent(1); got != 500 {
		t.Errorf("CategorySpent(1) = %v, want 500 after new expense", got)
	}
	if got := store.TotalSpent(); got != 650 {
		t.Errorf("TotalSpent() = %v, want 650 after new expense", got)
	}
}

func TestBudgetFetchCategoriesResetsExpenses(t *testing.T) {
	store := seededBudgetStore(t)

	if err := store.FetchCategories(context.Background()); err != nil {
		t.Fatalf("FetchCategories() error = %v", err)
	}
	if got := store.TotalSpent(); got != 0 {
		t.Errorf("TotalSpent() = %v, want 0 after category refetch", got)
	}
}

func TestBudgetValidation(t *testing.T) {
	store := NewBudgetStore(&fakeBudgetAPI{})

	var verr *api.ValidationError
	if _, err := store.CreateCategory(context.Background(), "Venue", nil, -1); !errors.As(err, &verr) {
		t.Errorf("CreateCategory(-1) error = %v, want ValidationError", err)
	}
	if _, err := store.CreateExpense(context.Background(), 1, "deposit", -5); !errors.As(err, &verr) {
		t.Errorf("CreateExpense(-5) error = %v, want ValidationError", err)
	}
}

func TestBudgetFetchExpensesUnknownCategory(t *testing.T) {
	store := seededBudgetStore(t)

	if err := store.FetchExpenses(context.Background(), 99); err != nil {
		t.Errorf("FetchExpenses(99) error = %v, want nil no-op", err)
	}
	if got := store.TotalSpent(); got != 350 {
		t.Errorf("TotalSpent() = %v, want 350 unchanged", got)
	}
}

func TestBudgetPredefinedName(t *testing.T) {
	fake := &fakeBudgetAPI{predefined: []models.PredefinedCategory{
		{ID: 1, Name: "Venue"},
		{ID: 2, Name: "Photography"},
	}}
	store := NewBudgetStore(fake)
	if err := store.FetchPredefined(context.Background()); err != nil {
		t.Fatal(err)
	}

	if name, ok := store.PredefinedName(2); !ok || name != "Photography" {
		t.Errorf("PredefinedName(2) = (%q, %v), want (Photography, true)", name, ok)
	}
	if _, ok := store.PredefinedName(99); ok {
		t.Error("PredefinedName(99) should not resolve")
	}
}
