package models

import "time"

// ToDoItem represents one checklist entry.
type ToDoItem struct {
	// ID is the unique identifier for the item (UUID, issued by the server).
	ID string

	// Title is the human-readable task description.
	Title string

	// Completed reports whether the task has been checked off.
	Completed bool

	// CreatedAt is when the item entered the local collection.
	CreatedAt time.Time

	// UpdatedAt is bumped on every local mutation of the item.
	UpdatedAt time.Time

	// DueDate is the optional deadline. Nil means no deadline is set.
	DueDate *time.Time
}
