package event

import "github.com/lixenwraith/planet-sim/parameter"

// Queue is a fixed-size FIFO ring buffer of simulation events
// Single goroutine: the simulation pushes during a tick, the loop consumes between ticks
//
// Overflow: oldest events overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]Event
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event, evicting the oldest if the ring is full
func (q *Queue) Push(e Event) {
	q.events[q.tail&parameter.EventBufferMask] = e
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	if q.tail == q.head {
		return nil
	}
	result := make([]Event, 0, q.tail-q.head)
	for i := q.head; i < q.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, q.events[idx])
		q.events[idx] = Event{}
	}
	q.head = q.tail
	return result
}

// Len returns pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}
