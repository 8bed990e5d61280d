package gamepad

import (
	"sync"

	"github.com/gopad/gopad/event"
)

// eventQueue is the FIFO hand-off between the polling goroutine and the
// consumer. It is unbounded; the only backpressure is the polling cadence
// against the consumption cadence. At construction it holds the synthetic
// prelude of Connected events for devices found already attached, so a
// consumer that starts draining immediately sees those before any live
// event.
type eventQueue struct {
	mu     sync.Mutex
	events []event.Event
}

func newEventQueue(prelude []event.Event) *eventQueue {
	return &eventQueue{events: prelude}
}

func (q *eventQueue) push(ev event.Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

func (q *eventQueue) pop() (event.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return event.Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return ev, true
}
