package tasklist

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyTitle is returned when a title is empty after trimming.
	ErrEmptyTitle = errors.New("title required")

	// ErrInvalidPriority is returned for a priority outside low/medium/high.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidFilter is returned for a filter other than all/low/medium/high.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrNoEdit is returned by ApplyEdit when no edit is in progress.
	ErrNoEdit = errors.New("no edit in progress")
)

// encodeTasks serializes the collection into the stored array format.
// A nil collection is written as "[]", never "null".
func encodeTasks(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode task list: %w", err)
	}
	return data, nil
}

// decodeTasks parses the stored array. Records that break the Task
// invariants (unknown priority, blank title) are returned in dropped.
func decodeTasks(data []byte) (tasks []Task, dropped int, err error) {
	var raw []Task
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode task list: %w", err)
	}

	tasks = make([]Task, 0, len(raw))
	for _, t := range raw {
		if !t.Priority.Valid() || strings.TrimSpace(t.Title) == "" {
			dropped++
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, dropped, nil
}

// maxID bounds stored ids and the counter so that incrementing never
// overflows int on any platform.
const maxID = math.MaxInt32

func validID(id int) bool {
	return id >= 1 && id < maxID
}

func encodeNextID(n int) []byte {
	return []byte(strconv.Itoa(n))
}

func decodeNextID(data []byte) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || !validID(n) {
		return 0, fmt.Errorf("invalid id counter: %q", data)
	}
	return n, nil
}
