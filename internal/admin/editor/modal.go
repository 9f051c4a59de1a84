package editor

import (
	"sync"
	"time"
)

// ClearDelay is how long the edit context outlives Close, so a closing
// dialog keeps its content until the transition ends.
const ClearDelay = 300 * time.Millisecond

// State is either Closed or Open. Switch on it with a type switch.
type State[T any] interface {
	isState()
}

// Closed means no dialog is shown.
type Closed[T any] struct{}

// Open means the dialog is shown. A nil Item is create mode, anything else
// is edit mode for that item.
type Open[T any] struct {
	Item *T
}

func (Closed[T]) isState() {}
func (Open[T]) isState()   {}

// Stopper cancels a scheduled call.
type Stopper interface {
	Stop() bool
}

// Scheduler runs f after d.
type Scheduler func(d time.Duration, f func()) Stopper

func realScheduler(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Modal tracks one editor dialog.
type Modal[T any] struct {
	mu         sync.Mutex
	state      State[T]
	data       *T
	delay      time.Duration
	schedule   Scheduler
	pending    Stopper
	generation uint64
}

// Option configures a Modal.
type Option func(*settings)

type settings struct {
	delay    time.Duration
	schedule Scheduler
}

// WithDelay overrides ClearDelay.
func WithDelay(d time.Duration) Option {
	return func(s *settings) { s.delay = d }
}

// WithScheduler replaces the timer, mainly for tests.
func WithScheduler(schedule Scheduler) Option {
	return func(s *settings) { s.schedule = schedule }
}

// New returns a closed modal.
func New[T any](opts ...Option) *Modal[T] {
	cfg := settings{delay: ClearDelay, schedule: realScheduler}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Modal[T]{state: Closed[T]{}, delay: cfg.delay, schedule: cfg.schedule}
}

// Open shows the dialog. Passing nil opens it for creation. A pending
// context clear from an earlier Close is cancelled.
func (m *Modal[T]) Open(item *T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelPending()
	m.state = Open[T]{Item: item}
	m.data = item
}

// Close hides the dialog now and clears the edit context after the delay.
func (m *Modal[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, open := m.state.(Open[T]); !open {
		return
	}
	m.state = Closed[T]{}
	m.cancelPending()

	generation := m.generation
	m.pending = m.schedule(m.delay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.generation != generation {
			return
		}
		m.data = nil
		m.pending = nil
	})
}

// State returns the current variant.
func (m *Modal[T]) State() State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsOpen reports whether the dialog is shown.
func (m *Modal[T]) IsOpen() bool {
	_, open := m.State().(Open[T])
	return open
}

// Editing reports whether the dialog is open on an existing item.
func (m *Modal[T]) Editing() bool {
	open, ok := m.State().(Open[T])
	return ok && open.Item != nil
}

// Data returns the edit context. It stays set briefly after Close.
func (m *Modal[T]) Data() *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data
}

func (m *Modal[T]) cancelPending() {
	m.generation++
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
}
