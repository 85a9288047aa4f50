package models

import "time"

// Category represents one budget envelope, e.g. "Venue" or "Catering".
//
// A category deliberately carries no "spent" field: the amount spent is
// always derived by summing Expenses, so it can never drift from the
// expense list it is computed from.
type Category struct {
	// ID is the unique identifier for the category (storage sequence).
	ID int64

	// Name is the display name. Free text, or resolved from the predefined
	// category list when PredefinedCategoryID is set and Name is empty.
	Name string

	// EstimatedBudget is the planned amount for this category. Non-negative.
	EstimatedBudget float64

	// Expenses are the recorded expenses, in insertion order. Each expense
	// is owned exclusively by this category.
	Expenses []Expense

	// PredefinedCategoryID optionally links to a PredefinedCategory used to
	// resolve the display name.
	PredefinedCategoryID *int64
}

// Expense represents a single recorded cost inside a category.
type Expense struct {
	// ID is the unique identifier for the expense (storage sequence).
	ID int64

	// Title describes what the money went to.
	Title string

	// Amount is the cost. Non-negative.
	Amount float64

	// CategoryID is the owning category. An expense cannot exist without one.
	CategoryID int64

	// CreatedAt is when the expense entered the local collection.
	CreatedAt time.Time

	// UpdatedAt is bumped on local mutation.
	UpdatedAt time.Time
}

// PredefinedCategory is a read-only reference entry fetched from the server,
// used only to resolve display names for categories lacking a custom name.
type PredefinedCategory struct {
	ID   int64
	Name string
}
