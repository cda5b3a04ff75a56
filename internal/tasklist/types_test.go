package tasklist

import (
	"errors"
	"testing"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{" Medium ", PriorityMedium, false},
		{"HIGH", PriorityHigh, false},
		{"urgent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPriority) {
				t.Errorf("ParsePriority(%q): expected ErrInvalidPriority, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestParseFilter(t *testing.T) {
	if f, err := ParseFilter("All"); err != nil || f != FilterAll {
		t.Errorf("expected FilterAll, got %q %v", f, err)
	}
	if f, err := ParseFilter("low"); err != nil || f != FilterFor(PriorityLow) {
		t.Errorf("expected low filter, got %q %v", f, err)
	}
	if _, err := ParseFilter("none"); err == nil || err.Error() != "invalid filter: none" {
		t.Errorf("expected invalid filter error, got %v", err)
	}
}

func TestFilterMatches(t *testing.T) {
	high := Task{Priority: PriorityHigh}

	if !FilterAll.Matches(high) {
		t.Error("FilterAll should match everything")
	}
	if !Filter("").Matches(high) {
		t.Error("zero filter should match everything")
	}
	if FilterFor(PriorityLow).Matches(high) {
		t.Error("low filter should not match high task")
	}
}

func TestParseEditPlacement(t *testing.T) {
	if p, err := ParseEditPlacement("END"); err != nil || p != PlacementEnd {
		t.Errorf("got %q %v", p, err)
	}
	if _, err := ParseEditPlacement("middle"); err == nil {
		t.Error("expected error")
	}
}

func TestEditBufferZeroValue(t *testing.T) {
	var b EditBuffer
	if b.Active() {
		t.Error("zero buffer must be inactive")
	}
	// An active edit of a task with empty fields is still distinguishable.
	b = EditBuffer{active: true}
	if task, ok := b.Task(); !ok || task != (Task{}) {
		t.Errorf("unexpected %+v %v", task, ok)
	}
}

func TestEncodeTasks_NilIsEmptyArray(t *testing.T) {
	data, err := encodeTasks(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("expected [], got %s", data)
	}
}

func TestDecodeNextID(t *testing.T) {
	if n, err := decodeNextID([]byte(" 12\n")); err != nil || n != 12 {
		t.Errorf("got %d %v", n, err)
	}
	for _, bad := range []string{"", "abc", "0", "-3", "2147483647", "9223372036854775807"} {
		if _, err := decodeNextID([]byte(bad)); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
