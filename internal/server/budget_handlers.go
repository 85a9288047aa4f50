package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vowsync/vowsync/internal/models"
)

type categoryResponse struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	EstimatedBudget      float64 `json:"estimated_budget"`
	PredefinedCategoryID *int64  `json:"predefined_category_id"`
}

type expenseResponse struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Amount     float64 `json:"amount"`
	CategoryID int64   `json:"category_id"`
}

func toCategoryResponse(cat models.Category) categoryResponse {
	return categoryResponse{
		ID:                   cat.ID,
		Name:                 cat.Name,
		EstimatedBudget:      cat.EstimatedBudget,
		PredefinedCategoryID: cat.PredefinedCategoryID,
	}
}

func toExpenseResponse(exp models.Expense) expenseResponse {
	return expenseResponse{
		ID:         exp.ID,
		Title:      exp.Title,
		Amount:     exp.Amount,
		CategoryID: exp.CategoryID,
	}
}

func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.store.ListCategories(c.Request.Context(), userID(c))
	if err != nil {
		slog.Error("list categories failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}

	resp := make([]categoryResponse, len(cats))
	for i, cat := range cats {
		resp[i] = toCategoryResponse(cat)
	}
	c.JSON(http.StatusOK, gin.H{"categories": resp})
}

func (s *Server) createCategory(c *gin.Context) {
	var req struct {
		Name                 string  `json:"name"`
		EstimatedBudget      float64 `json:"estimatedBudget"`
		PredefinedCategoryID *int64  `json:"predefinedCategoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if req.EstimatedBudget < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estimatedBudget must not be negative"})
		return
	}

	cat := models.Category{
		Name:                 req.Name,
		EstimatedBudget:      req.EstimatedBudget,
		PredefinedCategoryID: req.PredefinedCategoryID,
	}
	if err := s.store.CreateCategory(c.Request.Context(), userID(c), &cat); err != nil {
		slog.Error("create category failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": toCategoryResponse(cat)})
}

func (s *Server) listExpenses(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	expenses, err := s.store.ListExpenses(c.Request.Context(), userID(c), categoryID)
	if s.respondMutation(c, err, "fetch expenses") {
		resp := make([]expenseResponse, len(expenses))
		for i, exp := range expenses {
			resp[i] = toExpenseResponse(exp)
		}
		c.JSON(http.StatusOK, gin.H{"expenses": resp})
	}
}

func (s *Server) createExpense(c *gin.Context) {
	var req struct {
		CategoryID int64   `json:"categoryId"`
		Title      string  `json:"title"`
		Amount     float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}

	exp := models.Expense{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Amount:     req.Amount,
	}
	err := s.store.CreateExpense(c.Request.Context(), userID(c), &exp)
	if s.respondMutation(c, err, "create expense") {
		c.JSON(http.StatusCreated, gin.H{"expense": toExpenseResponse(exp)})
	}
}

func (s *Server) listPredefinedCategories(c *gin.Context) {
	cats, err := s.store.ListPredefinedCategories(c.Request.Context())
	if err != nil {
		slog.Error("list predefined categories failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch predefined categories"})
		return
	}

	type predefinedResponse struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	resp := make([]predefinedResponse, len(cats))
	for i, cat := range cats {
		resp[i] = predefinedResponse{ID: cat.ID, Name: cat.Name}
	}
	c.JSON(http.StatusOK, gin.H{"categories": resp})
}
