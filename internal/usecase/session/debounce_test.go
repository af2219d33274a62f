package session

import (
	"testing"
	"time"
)

type commits struct {
	values []string
}

func (c *commits) add(v string) { c.values = append(c.values, v) }

func TestDebouncer_LastValueWins(t *testing.T) {
	clock := &manualClock{}
	got := &commits{}
	d := NewDebouncer(clock, got.add)

	d.Schedule("w", 300*time.Millisecond)
	clock.Advance(100 * time.Millisecond)
	d.Schedule("wi", 300*time.Millisecond)
	clock.Advance(100 * time.Millisecond)
	d.Schedule("wireless", 300*time.Millisecond)

	if clock.Armed() != 1 {
		t.Errorf("armed timers = %d, want 1", clock.Armed())
	}

	clock.Advance(299 * time.Millisecond)
	if len(got.values) != 0 {
		t.Fatalf("committed before the quiet period: %v", got.values)
	}

	clock.Advance(time.Millisecond)
	if len(got.values) != 1 || got.values[0] != "wireless" {
		t.Fatalf("commits = %v, want [wireless]", got.values)
	}
	if d.Pending() {
		t.Error("Pending() = true after commit")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	clock := &manualClock{}
	got := &commits{}
	d := NewDebouncer(clock, got.add)

	if d.Cancel() {
		t.Error("Cancel() with nothing pending = true")
	}
	d.Schedule("lamp", time.Second)
	if !d.Cancel() {
		t.Error("Cancel() = false, want true")
	}
	clock.Advance(2 * time.Second)
	if len(got.values) != 0 {
		t.Errorf("cancelled value committed: %v", got.values)
	}
}

func TestDebouncer_Flush(t *testing.T) {
	clock := &manualClock{}
	got := &commits{}
	d := NewDebouncer(clock, got.add)

	if d.Flush() {
		t.Error("Flush() with nothing pending = true")
	}
	d.Schedule("sofa", time.Second)
	if !d.Flush() {
		t.Fatal("Flush() = false, want true")
	}
	if len(got.values) != 1 || got.values[0] != "sofa" {
		t.Fatalf("commits = %v, want [sofa]", got.values)
	}

	// The flushed timer must not commit a second time.
	clock.Advance(2 * time.Second)
	if len(got.values) != 1 {
		t.Errorf("commits after flush = %v", got.values)
	}
}

func TestDebouncer_StaleTimerIgnored(t *testing.T) {
	got := &commits{}
	clock := &manualClock{}
	d := NewDebouncer(clock, got.add)

	d.Schedule("old", time.Second)
	stale := clock.timers[0].f
	d.Schedule("new", time.Second)

	// A timer that raced past Stop still carries its old sequence number.
	stale()
	if len(got.values) != 0 {
		t.Fatalf("stale timer committed: %v", got.values)
	}

	clock.Advance(time.Second)
	if len(got.values) != 1 || got.values[0] != "new" {
		t.Errorf("commits = %v, want [new]", got.values)
	}
}

func TestDebouncer_RealClock(t *testing.T) {
	done := make(chan string, 1)
	d := NewDebouncer(nil, func(v string) { done <- v })

	d.Schedule("a", time.Millisecond)
	select {
	case v := <-done:
		if v != "a" {
			t.Errorf("committed %q, want a", v)
		}
	case <-time.After(time.Second):
		t.Fatal("commit never fired")
	}
}
