package sim

// Scheduler emits spawn events at a jittered cadence. Each interval is
// drawn uniformly from [0.5*delay, 1.5*delay).
type Scheduler struct {
	delay float64
	next  float64
	seq   uint32
}

// NewScheduler returns a scheduler whose first spawn is due at
// start + firstDelay.
func NewScheduler(start, firstDelay, delay float64) *Scheduler {
	return &Scheduler{delay: delay, next: start + firstDelay}
}

// Tick emits at most one spawn when elapsed has reached the due time, then
// draws the next due time from rng.
func (s *Scheduler) Tick(elapsed float64, rng Source) (SpawnEvent, bool) {
	if elapsed < s.next {
		return SpawnEvent{}, false
	}
	evt := SpawnEvent{Seq: s.seq}
	r := float64(rng.Float32())
	s.next = elapsed + s.delay + s.delay*(r-0.5)
	s.seq++
	return evt, true
}

// SetDelay changes the average interval from the next draw on.
func (s *Scheduler) SetDelay(delay float64) {
	s.delay = delay
}

// Delay returns the current average interval.
func (s *Scheduler) Delay() float64 { return s.delay }

// Next returns the elapsed time at which the next spawn is due.
func (s *Scheduler) Next() float64 { return s.next }

// Seq returns the sequence number the next spawn will carry.
func (s *Scheduler) Seq() uint32 { return s.seq }
