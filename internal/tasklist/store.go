package tasklist

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"todo/internal/logging"
	"todo/internal/storage"
)

// Store owns the authoritative ordered task collection.
// Every mutation is written to the backend before the call returns.
// A Store is not safe for concurrent use.
type Store struct {
	backend   storage.Backend
	log       *logging.Logger
	placement EditPlacement

	tasks  []Task
	nextID int

	edit   EditBuffer
	filter Filter
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l.With("tasklist")
		}
	}
}

// WithEditPlacement sets where ApplyEdit puts the edited task.
func WithEditPlacement(p EditPlacement) Option {
	return func(s *Store) {
		s.placement = p
	}
}

// New creates an empty Store on top of backend. Call Load to hydrate it.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		log:       logging.Discard(),
		placement: PlacementPreserve,
		nextID:    1,
		filter:    FilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collection with the stored one.
// Missing or malformed data yields an empty collection; only a backend
// that cannot be read at all produces an error.
func (s *Store) Load(ctx context.Context) error {
	s.tasks = nil
	s.nextID = 1
	s.edit = EditBuffer{}

	data, err := s.backend.Get(ctx, storage.TaskListKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.log.Debug("no saved task list")
	case err != nil:
		return fmt.Errorf("load task list: %w", err)
	default:
		tasks, dropped, err := decodeTasks(data)
		if err != nil {
			s.log.Debug("ignoring unreadable task list: %v", err)
			break
		}
		if dropped > 0 {
			s.log.Debug("dropped %d invalid task records", dropped)
		}
		s.tasks = tasks
	}

	// Counter: never below max(id)+1, so data without a stored counter
	// (or with a stale one) still yields unique ids.
	for _, t := range s.tasks {
		if validID(t.ID) && t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	raw, err := s.backend.Get(ctx, storage.NextIDKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return fmt.Errorf("load id counter: %w", err)
	default:
		n, err := decodeNextID(raw)
		if err != nil {
			s.log.Debug("ignoring id counter: %v", err)
		} else if n > s.nextID {
			s.nextID = n
		}
	}

	if s.reassignIDs() > 0 {
		if err := s.persist(ctx); err != nil {
			s.log.Info("could not save reassigned task ids: %v", err)
		}
	}

	s.log.Debug("loaded %d tasks, next id %d", len(s.tasks), s.nextID)
	return nil
}

// reassignIDs gives a fresh counter id to every task whose id is out of
// range or already used by an earlier task. Lists written before the
// counter existed can repeat ids after a delete. Returns the number of
// tasks changed.
func (s *Store) reassignIDs() int {
	seen := make(map[int]bool, len(s.tasks))
	changed := 0
	for i := range s.tasks {
		t := &s.tasks[i]
		if validID(t.ID) && !seen[t.ID] {
			seen[t.ID] = true
			continue
		}
		s.log.Debug("task %q: id %d reassigned to %d", logging.Truncate(t.Title, 40), t.ID, s.nextID)
		t.ID = s.nextID
		seen[t.ID] = true
		s.nextID++
		changed++
	}
	return changed
}

// Tasks returns a copy of the full collection in order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Add appends a new incomplete task and persists the list.
// A title that is blank after trimming is rejected with ErrEmptyTitle.
func (s *Store) Add(ctx context.Context, title string, priority Priority) (Task, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, ErrEmptyTitle
	}
	if !priority.Valid() {
		return Task{}, fmt.Errorf("%w: %s", ErrInvalidPriority, priority)
	}

	t := Task{
		ID:       s.nextID,
		Title:    title,
		Status:   false,
		Priority: priority,
	}
	err := s.mutate(ctx, func() {
		s.tasks = append(s.tasks, t)
		s.nextID++
	})
	if err != nil {
		return Task{}, err
	}
	return t, nil
}

// ToggleStatus flips the completion status of the task with id.
func (s *Store) ToggleStatus(ctx context.Context, id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	err := s.mutate(ctx, func() {
		s.tasks[i].Status = !s.tasks[i].Status
	})
	if err != nil {
		return Task{}, err
	}
	return s.tasks[i], nil
}

// Delete removes the task with id.
func (s *Store) Delete(ctx context.Context, id int) error {
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	return s.mutate(ctx, func() {
		s.tasks = slices.Delete(s.tasks, i, i+1)
	})
}

// BeginEdit copies the task with id into the edit buffer,
// replacing any edit already in progress.
func (s *Store) BeginEdit(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	s.edit = EditBuffer{task: s.tasks[i], active: true}
	return s.tasks[i], nil
}

// Editing returns the buffered task and whether an edit is in progress.
func (s *Store) Editing() (Task, bool) {
	return s.edit.Task()
}

// ApplyEdit sets newTitle on the buffered task, writes it back to the
// collection and clears the buffer. Status and priority come from the
// buffer. On ErrEmptyTitle the buffer is kept so the edit can be retried.
func (s *Store) ApplyEdit(ctx context.Context, newTitle string) (Task, error) {
	buffered, ok := s.edit.Task()
	if !ok {
		return Task{}, ErrNoEdit
	}
	if strings.TrimSpace(newTitle) == "" {
		return Task{}, ErrEmptyTitle
	}

	edited := buffered
	edited.Title = newTitle

	err := s.mutate(ctx, func() {
		i := s.index(edited.ID)
		switch {
		case i >= 0 && s.placement == PlacementPreserve:
			s.tasks[i] = edited
		case i >= 0:
			s.tasks = append(slices.Delete(s.tasks, i, i+1), edited)
		default:
			// Deleted while the edit was pending.
			s.tasks = append(s.tasks, edited)
		}
	})
	if err != nil {
		return Task{}, err
	}
	s.edit = EditBuffer{}
	return edited, nil
}

// CancelEdit discards the edit in progress, if any.
func (s *Store) CancelEdit() {
	s.edit = EditBuffer{}
}

// SetFilter sets the priority filter used by VisibleTasks.
func (s *Store) SetFilter(f Filter) {
	if f == "" {
		f = FilterAll
	}
	s.filter = f
}

// Filter returns the current priority filter.
func (s *Store) Filter() Filter {
	return s.filter
}

// VisibleTasks yields the tasks matching the current filter in collection
// order. The sequence reads the live collection each time it is ranged over.
func (s *Store) VisibleTasks() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, t := range s.tasks {
			if !s.filter.Matches(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

// mutate applies fn and persists the result. If persisting fails the
// collection and counter are restored to their state before fn ran.
func (s *Store) mutate(ctx context.Context, fn func()) error {
	prevTasks := slices.Clone(s.tasks)
	prevNext := s.nextID

	fn()

	if err := s.persist(ctx); err != nil {
		s.tasks = prevTasks
		s.nextID = prevNext
		return err
	}
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	data, err := encodeTasks(s.tasks)
	if err != nil {
		return err
	}
	err = s.backend.Put(ctx,
		storage.Entry{Key: storage.TaskListKey, Value: data},
		storage.Entry{Key: storage.NextIDKey, Value: encodeNextID(s.nextID)},
	)
	if err != nil {
		return fmt.Errorf("persist task list: %w", err)
	}
	return nil
}
