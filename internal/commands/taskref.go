package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"todo/internal/tasklist"
)

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrInvalidTaskRef indicates a reference that is not a positive number.
	ErrInvalidTaskRef = errors.New("invalid task reference")
)

// ParseTaskRef parses a single task reference: the 1-based display number
// printed by `todo list`.
func ParseTaskRef(arg string) (int, error) {
	if !isAllDigits(arg) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTaskRef, arg)
	}
	num, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTaskRef, arg)
	}
	return num, nil
}

// ParseTaskRefs parses one or more task references.
// Returns ErrTaskRefRequired if args is empty.
func ParseTaskRefs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskRefRequired
	}
	nums := make([]int, 0, len(args))
	for _, arg := range args {
		num, err := ParseTaskRef(arg)
		if err != nil {
			return nil, err
		}
		nums = append(nums, num)
	}
	return nums, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// outOfRangeError reports a display number with no visible task.
type outOfRangeError struct {
	num int
}

func (e *outOfRangeError) Error() string {
	return fmt.Sprintf("task number out of range: %d", e.num)
}

// resolveTaskRefs maps display numbers to tasks under the store's current
// filter. All numbers are resolved before the caller mutates anything, so
// earlier deletions do not shift later references.
func resolveTaskRefs(tasks *tasklist.Store, nums []int) ([]tasklist.Task, error) {
	visible := make([]tasklist.Task, 0, tasks.Len())
	for t := range tasks.VisibleTasks() {
		visible = append(visible, t)
	}

	result := make([]tasklist.Task, 0, len(nums))
	seen := make(map[int]bool, len(nums))
	for _, num := range nums {
		if num < 1 || num > len(visible) {
			return nil, &outOfRangeError{num: num}
		}
		t := visible[num-1]
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		result = append(result, t)
	}
	return result, nil
}
