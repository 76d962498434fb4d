// Package models defines the core domain models for the shower planner.
//
// # Models
//
//   - User: a registered account; the username keys every other collection
//   - Event: the baby shower being planned (babies, date, title)
//   - Task: one checklist entry
//   - Expense, Gift, Suggestion, Game: rows of the per-user tables
//
// Each user owns exactly one value of every collection. There are no IDs
// below the user: list entries are addressed by position, as the planner
// screens do.
//
// # Design Principles
//
// 1. **Plain values**: models carry no storage or transport concerns
// 2. **Empty is valid**: the zero value of every collection is its empty default
// 3. **JSON tags are storage format**: table rows are persisted as JSON objects,
// so tag names must not change without a data migration
package models
