package commands

import (
	"todo/internal/tasklist"
)

// priorityFlag is a flag.Value accepting low, medium or high.
// The zero value means "not set".
type priorityFlag struct {
	p tasklist.Priority
}

func (f *priorityFlag) String() string { return string(f.p) }

func (f *priorityFlag) Set(s string) error {
	p, err := tasklist.ParsePriority(s)
	if err != nil {
		return err
	}
	f.p = p
	return nil
}

// or returns the parsed priority, or def if the flag was not given.
func (f *priorityFlag) or(def tasklist.Priority) tasklist.Priority {
	switch {
	case f.p != "":
		return f.p
	case def != "":
		return def
	}
	return tasklist.DefaultPriority
}

// filterFlag is a flag.Value accepting all, low, medium or high.
// The zero value means all.
type filterFlag struct {
	f tasklist.Filter
}

func (f *filterFlag) String() string { return string(f.value()) }

func (f *filterFlag) Set(s string) error {
	v, err := tasklist.ParseFilter(s)
	if err != nil {
		return err
	}
	f.f = v
	return nil
}

func (f *filterFlag) value() tasklist.Filter {
	if f.f == "" {
		return tasklist.FilterAll
	}
	return f.f
}
