// Package tasklist implements the task list state machine and its persistence.
package tasklist

import (
	"fmt"
	"strings"
)

// Priority is the importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is used when the caller does not pick one.
const DefaultPriority = PriorityMedium

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority parses a priority name (case-insensitive, trimmed).
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidPriority, s)
	}
	return p, nil
}

// Task represents a single to-do item.
// Field names and JSON tags follow the stored "todoList" format.
type Task struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Status   bool     `json:"status"` // true when completed
	Priority Priority `json:"priority"`
}

// Filter selects which tasks are visible.
// FilterAll shows everything; any other value matches a single priority.
type Filter string

// FilterAll disables priority filtering.
const FilterAll Filter = "all"

// ParseFilter parses "all" or a priority name.
func ParseFilter(s string) (Filter, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == string(FilterAll) {
		return FilterAll, nil
	}
	p, err := ParsePriority(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidFilter, s)
	}
	return FilterFor(p), nil
}

// FilterFor returns the filter matching only priority p.
func FilterFor(p Priority) Filter {
	return Filter(p)
}

// Matches reports whether t is visible under f.
func (f Filter) Matches(t Task) bool {
	return f == FilterAll || f == "" || Priority(f) == t.Priority
}

// EditPlacement decides where an edited task ends up in the list.
type EditPlacement string

const (
	// PlacementPreserve replaces the task at its current position.
	PlacementPreserve EditPlacement = "preserve"

	// PlacementEnd removes the task and appends it to the end of the list.
	PlacementEnd EditPlacement = "end"
)

// ParseEditPlacement parses "preserve" or "end".
func ParseEditPlacement(s string) (EditPlacement, error) {
	switch v := EditPlacement(strings.ToLower(strings.TrimSpace(s))); v {
	case PlacementPreserve, PlacementEnd:
		return v, nil
	}
	return "", fmt.Errorf("invalid edit placement: %s", s)
}

// EditBuffer holds the snapshot of the task currently being edited.
// The zero value means no edit is in progress.
type EditBuffer struct {
	task   Task
	active bool
}

// Active reports whether an edit is in progress.
func (b EditBuffer) Active() bool {
	return b.active
}

// Task returns the buffered snapshot and whether an edit is in progress.
func (b EditBuffer) Task() (Task, bool) {
	return b.task, b.active
}
