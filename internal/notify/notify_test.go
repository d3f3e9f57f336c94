package notify

import (
	"testing"
	"time"
)

// manualScheduler captures expiry callbacks so tests fire or cancel them
// deterministically instead of waiting out real timers.
type manualScheduler struct {
	fns []func()
}

func (m *manualScheduler) after(d time.Duration, fn func()) StopFunc {
	if d != TTL {
		panic("unexpected expiry duration")
	}
	i := len(m.fns)
	m.fns = append(m.fns, fn)
	return func() bool {
		armed := m.fns[i] != nil
		m.fns[i] = nil
		return armed
	}
}

// fire runs the i-th scheduled expiry as the timer would.
func (m *manualScheduler) fire(i int) {
	if fn := m.fns[i]; fn != nil {
		fn()
	}
}

func newTestQueue() (*Queue, *manualScheduler) {
	sched := &manualScheduler{}
	q := New(WithScheduler(sched.after))
	return q, sched
}

func drain(q *Queue) {
	select {
	case <-q.Updates():
	default:
	}
}

func TestQueue_PushKeepsInsertionOrder(t *testing.T) {
	q, _ := newTestQueue()

	first := q.Success("added")
	second := q.Error("failed")
	third := q.Info("deleted")

	items := q.Items()
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	wantIDs := []string{first, second, third}
	wantSeverity := []Severity{SeveritySuccess, SeverityError, SeverityInfo}
	for i, n := range items {
		if n.ID != wantIDs[i] {
			t.Fatalf("items[%d].ID = %q, want %q", i, n.ID, wantIDs[i])
		}
		if n.Severity != wantSeverity[i] {
			t.Fatalf("items[%d].Severity = %q, want %q", i, n.Severity, wantSeverity[i])
		}
	}
	if first == second || second == third {
		t.Fatalf("ids not unique: %q %q %q", first, second, third)
	}
}

func TestQueue_ExpiryRemovesOnlyItsNotification(t *testing.T) {
	q, sched := newTestQueue()

	q.Push("one", SeverityInfo)
	keep := q.Push("two", SeverityInfo)

	sched.fire(0)
	items := q.Items()
	if len(items) != 1 || items[0].ID != keep {
		t.Fatalf("items after expiry = %#v, want only %q", items, keep)
	}

	// A second fire of the same timer is a no-op.
	sched.fire(0)
	if got := len(q.Items()); got != 1 {
		t.Fatalf("len(items) after duplicate expiry = %d, want 1", got)
	}
}

func TestQueue_DismissCancelsPendingExpiry(t *testing.T) {
	q, sched := newTestQueue()

	id := q.Push("bye", SeverityInfo)
	q.Dismiss(id)

	if got := len(q.Items()); got != 0 {
		t.Fatalf("len(items) after dismiss = %d, want 0", got)
	}
	if sched.fns[0] != nil {
		t.Fatalf("expiry still armed after dismiss")
	}

	// Timer racing the dismissal finds nothing to remove.
	q.Push("other", SeverityInfo)
	sched.fire(0)
	if got := len(q.Items()); got != 1 {
		t.Fatalf("len(items) = %d, want 1 (stale expiry must not remove later items)", got)
	}
}

func TestQueue_DismissUnknownIDIsNoOp(t *testing.T) {
	q, _ := newTestQueue()

	id := q.Push("hi", SeverityInfo)
	drain(q)
	q.Dismiss("not-an-id")
	q.Dismiss(id)
	q.Dismiss(id)

	if got := len(q.Items()); got != 0 {
		t.Fatalf("len(items) = %d, want 0", got)
	}
}

func TestQueue_SignalsOnEveryChange(t *testing.T) {
	q, sched := newTestQueue()

	id := q.Push("hello", SeverityInfo)
	select {
	case <-q.Updates():
	default:
		t.Fatal("no signal after Push")
	}

	q.Push("again", SeverityInfo)
	q.Dismiss(id)
	select {
	case <-q.Updates():
	default:
		t.Fatal("no signal after coalesced changes")
	}

	drain(q)
	sched.fire(1)
	select {
	case <-q.Updates():
	default:
		t.Fatal("no signal after expiry")
	}
}

func TestQueue_RealTimerExpires(t *testing.T) {
	q := New()
	q.Push("short-lived", SeverityInfo)

	// Not waiting out the full TTL here; just confirm the default scheduler
	// wires a cancellable timer.
	items := q.Items()
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	q.Dismiss(items[0].ID)
	if got := len(q.Items()); got != 0 {
		t.Fatalf("len(items) after dismiss = %d, want 0", got)
	}
}
