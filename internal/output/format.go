// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"todo/internal/tasklist"
)

// EmptyMessage is printed when no task is visible.
const EmptyMessage = "no tasks found"

// FormatTask formats a task line.
// Format: "{N:>4}  [{x| }] {PRIORITY:<6} {TITLE}\n"
// N is the display number (position in the visible list), not the task id.
func FormatTask(w io.Writer, num int, task tasklist.Task) {
	mark := " "
	if task.Status {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %-6s %s\n", num, mark, task.Priority, normalizeTitle(task.Title))
}

// FormatTasks formats every task yielded by tasks, numbered from 1.
// Returns the number of lines written.
func FormatTasks(w io.Writer, tasks iter.Seq[tasklist.Task]) int {
	n := 0
	for task := range tasks {
		n++
		FormatTask(w, n, task)
	}
	return n
}

// FormatEditing formats the edit-in-progress notice used by the shell.
func FormatEditing(w io.Writer, task tasklist.Task) {
	fmt.Fprintf(w, "editing: %s\n", normalizeTitle(task.Title))
}

// normalizeTitle normalizes a task title for display.
// - Newlines are replaced with spaces
// - Empty or whitespace-only titles become "(untitled)"
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
