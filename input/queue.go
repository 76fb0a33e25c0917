package input

import "sync"

// Queue is a Source fed by Push. It is safe for concurrent use, so a
// capture goroutine can push while the render loop polls.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue returns a queue preloaded with events.
func NewQueue(events ...Event) *Queue {
	return &Queue{events: append([]Event(nil), events...)}
}

// Push appends events to the queue.
func (q *Queue) Push(events ...Event) {
	q.mu.Lock()
	q.events = append(q.events, events...)
	q.mu.Unlock()
}

// Poll removes and returns every queued event.
func (q *Queue) Poll() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Script is a Source that releases one step of events per Poll. It drives
// headless runs from the command line: each step is what a user did during
// one tick.
type Script struct {
	steps [][]Event
}

// NewScript returns a Script releasing steps in order. Once exhausted,
// Poll returns nil.
func NewScript(steps ...[]Event) *Script {
	return &Script{steps: steps}
}

// Poll returns the next step.
func (s *Script) Poll() []Event {
	if len(s.steps) == 0 {
		return nil
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return step
}

// Remaining returns the number of steps not yet released.
func (s *Script) Remaining() int {
	return len(s.steps)
}
