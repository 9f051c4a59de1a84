package editor

import (
	"testing"
	"time"
)

type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	already := t.stopped
	t.stopped = true
	return !already
}

func (t *manualTimer) fire() {
	if !t.stopped {
		t.fn()
	}
}

type manualClock struct {
	timers []*manualTimer
	delays []time.Duration
}

func (c *manualClock) schedule(d time.Duration, f func()) Stopper {
	timer := &manualTimer{fn: f}
	c.timers = append(c.timers, timer)
	c.delays = append(c.delays, d)
	return timer
}

type item struct{ name string }

func TestOpenWithoutItemIsCreateMode(t *testing.T) {
	m := New[item]()

	m.Open(nil)

	if !m.IsOpen() || m.Editing() {
		t.Fatalf("expected open create mode")
	}
	switch state := m.State().(type) {
	case Open[item]:
		if state.Item != nil {
			t.Fatalf("expected nil context")
		}
	default:
		t.Fatalf("unexpected state %T", state)
	}
}

func TestOpenWithItemIsEditMode(t *testing.T) {
	m := New[item]()
	target := &item{name: "Figma"}

	m.Open(target)

	if !m.Editing() {
		t.Fatalf("expected edit mode")
	}
	if m.Data() != target {
		t.Fatalf("expected context to be the item")
	}
}

func TestCloseClearsContextAfterDelay(t *testing.T) {
	clock := &manualClock{}
	m := New[item](WithScheduler(clock.schedule))
	m.Open(&item{name: "Figma"})

	m.Close()

	if m.IsOpen() {
		t.Fatalf("expected modal closed immediately")
	}
	if m.Data() == nil {
		t.Fatalf("expected context to linger until the delay elapses")
	}
	if len(clock.timers) != 1 || clock.delays[0] != ClearDelay {
		t.Fatalf("expected one clear scheduled after %v, got %v", ClearDelay, clock.delays)
	}

	clock.timers[0].fire()
	if m.Data() != nil {
		t.Fatalf("expected context cleared")
	}
}

func TestReopenCancelsPendingClear(t *testing.T) {
	clock := &manualClock{}
	m := New[item](WithScheduler(clock.schedule))
	first := &item{name: "first"}
	second := &item{name: "second"}

	m.Open(first)
	m.Close()
	m.Open(second)

	if !clock.timers[0].stopped {
		t.Fatalf("expected pending clear to be stopped")
	}
	// a timer that already started running must not clobber the new context
	clock.timers[0].fn()
	if m.Data() != second {
		t.Fatalf("expected reopened context to survive")
	}
}

func TestCloseWhenClosedIsNoop(t *testing.T) {
	clock := &manualClock{}
	m := New[item](WithScheduler(clock.schedule))

	m.Close()

	if len(clock.timers) != 0 {
		t.Fatalf("expected no timer when already closed")
	}
	if _, ok := m.State().(Closed[item]); !ok {
		t.Fatalf("expected closed state")
	}
}

func TestRealTimerClears(t *testing.T) {
	m := New[item](WithDelay(5 * time.Millisecond))
	m.Open(&item{})
	m.Close()

	deadline := time.Now().Add(time.Second)
	for m.Data() != nil {
		if time.Now().After(deadline) {
			t.Fatal("context was never cleared")
		}
		time.Sleep(2 * time.Millisecond)
	}
}
