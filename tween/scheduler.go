package tween

// Scheduler advances every active tween once per tick. Tweens started while
// a tick is running wait in a pending queue and join on the next tick.
type Scheduler struct {
	active  []*Tween
	pending []*Tween
	tracked map[*Tween]struct{}
}

func NewScheduler() *Scheduler {
	return &Scheduler{tracked: make(map[*Tween]struct{})}
}

// Register queues t for the next tick. Tweens already active are ignored
// when the queue is flushed.
func (s *Scheduler) Register(t *Tween) {
	s.pending = append(s.pending, t)
}

// Tick advances the active tweens by dt, drops the ones that finished and
// then admits the queued ones.
func (s *Scheduler) Tick(dt float64) {
	kept := s.active[:0]
	for _, t := range s.active {
		if t.Advance(dt) {
			kept = append(kept, t)
			continue
		}
		delete(s.tracked, t)
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept

	for i, t := range s.pending {
		s.pending[i] = nil
		if _, ok := s.tracked[t]; ok {
			continue
		}
		s.tracked[t] = struct{}{}
		s.active = append(s.active, t)
	}
	s.pending = s.pending[:0]
}

// Len returns the number of active tweens.
func (s *Scheduler) Len() int { return len(s.active) }

// Contains reports whether t is in the active set.
func (s *Scheduler) Contains(t *Tween) bool {
	_, ok := s.tracked[t]
	return ok
}

// Active returns a copy of the active set in advance order.
func (s *Scheduler) Active() []*Tween {
	out := make([]*Tween, len(s.active))
	copy(out, s.active)
	return out
}
