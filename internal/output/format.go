// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasklist/internal/storage"
)

// NoTasks is printed by the list command when the store is empty.
const NoTasks = "no tasks found"

// FormatTask formats a task row.
// Format: "{N:>4}  {TITLE}\n" (4-wide right-aligned number, two spaces, title)
func FormatTask(w io.Writer, num int, task storage.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, NormalizeTitle(task.Title))
}

// FormatTasks formats every task with 1-based row numbers.
func FormatTasks(w io.Writer, tasks []storage.Task) {
	for i, t := range tasks {
		FormatTask(w, i+1, t)
	}
}

// NormalizeTitle normalizes a task title for single-line display.
// - Newlines and tabs are replaced with spaces
// - Empty or whitespace-only titles become "(untitled)"
func NormalizeTitle(title string) string {
	title = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(title)

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
