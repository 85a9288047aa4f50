// Package models defines the core domain models for Vowsync.
//
// # Model Overview
//
// The client keeps five independent aggregates in memory:
//   - ToDoItem: a checklist entry, optionally carrying a due date
//   - Category / Expense / PredefinedCategory: the budget planner
//   - Guest: an invitee and their RSVP status
//   - WeddingDetails: the per-user singleton describing the wedding
//   - Identity: the authenticated principal's display identity
//
// Vendor and User are edge models: Vendor is the shape returned by the
// vendor-search proxy, User is the server-side account record. The client
// never holds a User; it only sees Identity.
//
// # Design Principles
//
// 1. **Plain records**: no behavior on models beyond trivial helpers; all
//    derived values (spent totals, completion percentage, guest counts) are
//    computed by selectors on each read, never cached on the model.
// 2. **Avoid circular references**: Expense points at its Category by ID.
// 3. **Server-issued identity**: string IDs (todos, guests) are UUIDs issued
//    by the server; integer IDs (categories, expenses, predefined categories)
//    are storage sequences.
package models
