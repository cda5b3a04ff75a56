package storage

const (
	// TaskListKey holds the serialized task array.
	TaskListKey = "todoList"

	// NextIDKey holds the decimal id counter, written together with TaskListKey.
	NextIDKey = "todoList.nextId"
)

// Entry is a single key/value pair for Put.
type Entry struct {
	Key   string
	Value []byte
}
