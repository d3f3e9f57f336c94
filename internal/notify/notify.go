// Package notify manages transient, self-expiring user-facing messages.
//
// Each notification lives for five seconds unless dismissed earlier. Expiry
// is scheduled through a cancellable handle rather than a fire-and-forget
// timer: dismissing a notification stops its pending timer, and a timer that
// fires after dismissal finds nothing to remove. The queue is
// process-lifetime-scoped and starts empty every session.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is one transient user-facing message.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// TTL is how long a notification stays visible without dismissal.
const TTL = 5 * time.Second

// StopFunc cancels a scheduled expiry. It reports whether the expiry was
// still pending.
type StopFunc func() bool

// Scheduler runs fn after d and returns a handle that cancels it.
type Scheduler func(d time.Duration, fn func()) StopFunc

// Queue holds the live notifications in insertion order.
type Queue struct {
	mu      sync.Mutex
	items   []Notification
	pending map[string]StopFunc

	now   func() time.Time
	after Scheduler

	updates chan struct{}
}

// Option customizes a Queue, mainly for tests.
type Option func(*Queue)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// WithScheduler overrides how expiries are scheduled.
func WithScheduler(after Scheduler) Option {
	return func(q *Queue) { q.after = after }
}

// New returns an empty queue backed by real timers.
func New(opts ...Option) *Queue {
	q := &Queue{
		pending: make(map[string]StopFunc),
		now:     time.Now,
		updates: make(chan struct{}, 1),
	}
	q.after = func(d time.Duration, fn func()) StopFunc {
		return time.AfterFunc(d, fn).Stop
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push appends a notification and schedules its removal after TTL. The
// returned id is unique within the session.
func (q *Queue) Push(message string, severity Severity) string {
	id := uuid.NewString()
	q.mu.Lock()
	q.items = append(q.items, Notification{
		ID:        id,
		Message:   message,
		Severity:  severity,
		CreatedAt: q.now(),
	})
	q.pending[id] = q.after(TTL, func() { q.expire(id) })
	q.mu.Unlock()
	q.signal()
	return id
}

// Info pushes an info-severity notification.
func (q *Queue) Info(message string) string { return q.Push(message, SeverityInfo) }

// Success pushes a success-severity notification.
func (q *Queue) Success(message string) string { return q.Push(message, SeveritySuccess) }

// Error pushes an error-severity notification.
func (q *Queue) Error(message string) string { return q.Push(message, SeverityError) }

// Dismiss removes the notification immediately and cancels its pending
// expiry. Unknown or already-removed ids are a no-op.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	stop, ok := q.pending[id]
	if !ok {
		q.mu.Unlock()
		return
	}
	delete(q.pending, id)
	q.removeLocked(id)
	q.mu.Unlock()
	stop()
	q.signal()
}

// expire is the timer callback. A notification dismissed before its timer
// fires has no pending entry, so the callback does nothing.
func (q *Queue) expire(id string) {
	q.mu.Lock()
	if _, ok := q.pending[id]; !ok {
		q.mu.Unlock()
		return
	}
	delete(q.pending, id)
	q.removeLocked(id)
	q.mu.Unlock()
	q.signal()
}

func (q *Queue) removeLocked(id string) {
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the live notifications in insertion order.
func (q *Queue) Items() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	dup := make([]Notification, len(q.items))
	copy(dup, q.items)
	return dup
}

// Updates yields a signal after every change. The channel is buffered with
// capacity one so rapid changes coalesce; readers re-read Items after each
// receive.
func (q *Queue) Updates() <-chan struct{} {
	return q.updates
}

func (q *Queue) signal() {
	select {
	case q.updates <- struct{}{}:
	default:
	}
}
