package sim

// SpawnEvent asks for a new obstacle. Seq increases by one per spawn and
// picks the obstacle's palette slot.
type SpawnEvent struct {
	Seq uint32
}

// HitEvent fires when the player runs into an obstacle.
type HitEvent struct{}

// ScoreEvent fires when an obstacle passes the player untouched.
type ScoreEvent struct{}

// JumpEvent fires on every launch.
type JumpEvent struct{}

// Queue is a FIFO of pending events for one consumer.
type Queue[T any] struct {
	items []T
}

// Push adds an event.
func (q *Queue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all pending events and empties the queue.
func (q *Queue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Channel fans an event out to every subscribed queue. Each consumer
// drains its own queue once per tick, so delivery order is the emit order
// and no consumer can starve another.
type Channel[T any] struct {
	subs []*Queue[T]
}

// Subscribe registers a new consumer queue.
func (c *Channel[T]) Subscribe() *Queue[T] {
	q := &Queue[T]{}
	c.subs = append(c.subs, q)
	return q
}

// Emit pushes evt to every subscriber.
func (c *Channel[T]) Emit(evt T) {
	for _, q := range c.subs {
		q.Push(evt)
	}
}
