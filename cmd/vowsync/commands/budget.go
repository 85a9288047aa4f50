package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Track the wedding budget",
	}
	cmd.AddCommand(
		budgetListCmd(), budgetAddCategoryCmd(),
		budgetExpensesCmd(), budgetAddExpenseCmd(),
		budgetPredefinedCmd(),
	)
	return cmd
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with spend and remaining budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := app.state.Budget
			if err := b.FetchCategories(cmd.Context()); err != nil {
				return err
			}
			for _, cat := range b.Categories() {
				if err := b.FetchExpenses(cmd.Context(), cat.ID); err != nil {
					return err
				}
			}
			for _, cat := range b.Categories() {
				remaining, exceeded := b.Remaining(cat.ID)
				status := fmt.Sprintf("%.2f left", remaining)
				if exceeded {
					status = fmt.Sprintf("over by %.2f", remaining)
				}
				fmt.Printf("%d  %-20s budget %.2f  spent %.2f  %s\n",
					cat.ID, cat.Name, cat.EstimatedBudget, b.CategorySpent(cat.ID), status)
			}
			fmt.Printf("total budget %.2f, total spent %.2f\n", b.TotalBudget(), b.TotalSpent())
			return nil
		},
	}
}

func budgetAddCategoryCmd() *cobra.Command {
	var predefinedID int64
	cmd := &cobra.Command{
		Use:   "add-category [name] [estimated-budget]",
		Short: "Create a budget category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			budget, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("estimated-budget must be a number")
			}
			var predefined *int64
			if predefinedID != 0 {
				predefined = &predefinedID
			}
			cat, err := app.state.Budget.CreateCategory(cmd.Context(), args[0], predefined, budget)
			if err != nil {
				return err
			}
			fmt.Printf("Added category %d\n", cat.ID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&predefinedID, "predefined", 0, "predefined category id to link")
	return cmd
}

func budgetExpensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expenses [category-id]",
		Short: "List a category's expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("category-id must be a number")
			}
			b := app.state.Budget
			if err := b.FetchCategories(cmd.Context()); err != nil {
				return err
			}
			if err := b.FetchExpenses(cmd.Context(), categoryID); err != nil {
				return err
			}
			cat, ok := b.CategoryByID(categoryID)
			if !ok {
				return fmt.Errorf("no category with id %d", categoryID)
			}
			for _, exp := range cat.Expenses {
				fmt.Printf("%d  %-30s %.2f\n", exp.ID, exp.Title, exp.Amount)
			}
			return nil
		},
	}
}

func budgetAddExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-expense [category-id] [description] [amount]",
		Short: "Record an expense against a category",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("category-id must be a number")
			}
			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("amount must be a number")
			}
			if err := app.state.Budget.FetchCategories(cmd.Context()); err != nil {
				return err
			}
			exp, err := app.state.Budget.CreateExpense(cmd.Context(), categoryID, args[1], amount)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded expense %d\n", exp.ID)
			return nil
		},
	}
}

func budgetPredefinedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predefined",
		Short: "List the predefined category names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.state.Budget.FetchPredefined(cmd.Context()); err != nil {
				return err
			}
			for _, cat := range app.state.Budget.PredefinedCategories() {
				fmt.Printf("%d  %s\n", cat.ID, cat.Name)
			}
			return nil
		},
	}
}
