package game

import "time"

// maxBacklog bounds how many ticks may pile up between two Advance calls,
// so a stalled frame does not replay seconds of game time at once.
const maxBacklog = 8

// Scheduler turns caller-supplied elapsed time into discrete ticks. The
// interval can change between ticks without re-arming.
type Scheduler struct {
	interval    time.Duration
	accumulated time.Duration
	armed       bool
}

// Arm (re)starts the scheduler at the given interval with an empty backlog
func (s *Scheduler) Arm(interval time.Duration) {
	s.interval = interval
	s.accumulated = 0
	s.armed = true
}

// Cancel stops tick delivery and drops any backlog
func (s *Scheduler) Cancel() {
	s.armed = false
	s.accumulated = 0
}

// SetInterval changes the interval in place, keeping the backlog
func (s *Scheduler) SetInterval(interval time.Duration) {
	s.interval = interval
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

func (s *Scheduler) Armed() bool {
	return s.armed
}

// Advance feeds elapsed wall time into the scheduler
func (s *Scheduler) Advance(elapsed time.Duration) {
	if !s.armed || s.interval <= 0 || elapsed <= 0 {
		return
	}
	s.accumulated += elapsed
	if limit := s.interval * maxBacklog; s.accumulated > limit {
		s.accumulated = limit
	}
}

// Next consumes one due tick, reporting false when none is due
func (s *Scheduler) Next() bool {
	if !s.armed || s.interval <= 0 || s.accumulated < s.interval {
		return false
	}
	s.accumulated -= s.interval
	return true
}
