package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vowsync/vowsync/internal/models"
)

type wireCategory struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	EstimatedBudget      float64 `json:"estimated_budget"`
	PredefinedCategoryID *int64  `json:"predefined_category_id,omitempty"`
}

func (w wireCategory) model() models.Category {
	return models.Category{
		ID:                   w.ID,
		Name:                 w.Name,
		EstimatedBudget:      w.EstimatedBudget,
		PredefinedCategoryID: w.PredefinedCategoryID,
	}
}

type wireExpense struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Amount     float64 `json:"amount"`
	CategoryID int64   `json:"category_id"`
}

func (w wireExpense) model() models.Expense {
	return models.Expense{
		ID:         w.ID,
		Title:      w.Title,
		Amount:     w.Amount,
		CategoryID: w.CategoryID,
	}
}

// ListCategories fetches all budget categories. Expense lists are not
// included; they are fetched per category with ListExpenses.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out struct {
		Categories []wireCategory `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/budgetPlanner/categories", true, nil, &out); err != nil {
		return nil, err
	}
	cats := make([]models.Category, len(out.Categories))
	for i, w := range out.Categories {
		cats[i] = w.model()
	}
	return cats, nil
}

// CreateCategory creates a budget category and returns the server's record.
func (c *Client) CreateCategory(ctx context.Context, name string, predefinedID *int64, estimatedBudget float64) (models.Category, error) {
	req := struct {
		Name                 string  `json:"name"`
		PredefinedCategoryID *int64  `json:"predefinedCategoryId,omitempty"`
		EstimatedBudget      float64 `json:"estimatedBudget"`
	}{Name: name, PredefinedCategoryID: predefinedID, EstimatedBudget: estimatedBudget}

	var out struct {
		Category wireCategory `json:"category"`
	}
	if err := c.do(ctx, http.MethodPost, "/budgetPlanner/categories", true, req, &out); err != nil {
		return models.Category{}, err
	}
	return out.Category.model(), nil
}

// ListExpenses fetches the expenses recorded under one category.
func (c *Client) ListExpenses(ctx context.Context, categoryID int64) ([]models.Expense, error) {
	var out struct {
		Expenses []wireExpense `json:"expenses"`
	}
	path := "/budgetPlanner/expenses/" + strconv.FormatInt(categoryID, 10)
	if err := c.do(ctx, http.MethodGet, path, true, nil, &out); err != nil {
		return nil, err
	}
	exps := make([]models.Expense, len(out.Expenses))
	for i, w := range out.Expenses {
		exps[i] = w.model()
	}
	return exps, nil
}

// CreateExpense records an expense under a category and returns the
// server's record.
func (c *Client) CreateExpense(ctx context.Context, categoryID int64, title string, amount float64) (models.Expense, error) {
	req := struct {
		CategoryID int64   `json:"categoryId"`
		Title      string  `json:"title"`
		Amount     float64 `json:"amount"`
	}{CategoryID: categoryID, Title: title, Amount: amount}

	var out struct {
		Expense wireExpense `json:"expense"`
	}
	if err := c.do(ctx, http.MethodPost, "/budgetPlanner/expenses", true, req, &out); err != nil {
		return models.Expense{}, err
	}
	return out.Expense.model(), nil
}

// ListPredefinedCategories fetches the read-only predefined category list.
func (c *Client) ListPredefinedCategories(ctx context.Context) ([]models.PredefinedCategory, error) {
	var out struct {
		Categories []models.PredefinedCategory `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/budgetPlanner/predefined-categories", true, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}
