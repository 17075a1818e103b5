package core

// TaskID identifies a scheduled task.
type TaskID uint64

type task struct {
	id     TaskID
	key    string
	due    float64
	gen    uint64
	run    *Session // session the task belongs to, if tracked
	runGen uint64   // run.Generation() when scheduled
	fn     func()
}

// Scheduler runs deferred callbacks on simulation time. It is advanced by the
// owning game inside Step, so callbacks run on the simulation goroutine and
// never race with game state. The zero value is ready to use.
type Scheduler struct {
	now    float64
	nextID TaskID
	gen    uint64
	run    *Session
	tasks  []*task
}

// Now returns the simulation time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After schedules fn to run delay seconds from now.
// A non-empty key replaces any pending task with the same key.
func (s *Scheduler) After(key string, delay float64, fn func()) TaskID {
	if key != "" {
		s.CancelKey(key)
	}
	s.nextID++
	s.tasks = append(s.tasks, &task{
		id:     s.nextID,
		key:    key,
		due:    s.now + max(delay, 0),
		gen:    s.gen,
		run:    s.run,
		runGen: s.runGeneration(),
		fn:     fn,
	})
	return s.nextID
}

// Cancel removes the task with the given ID.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelKey removes the pending task with the given key.
func (s *Scheduler) CancelKey(key string) bool {
	for i, t := range s.tasks {
		if t.key == key {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether a task with key is waiting.
func (s *Scheduler) Pending(key string) bool {
	for _, t := range s.tasks {
		if t.key == key {
			return true
		}
	}
	return false
}

// Remaining returns seconds until the keyed task fires, or 0.
func (s *Scheduler) Remaining(key string) float64 {
	for _, t := range s.tasks {
		if t.key == key {
			return max(t.due-s.now, 0)
		}
	}
	return 0
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Advance moves simulation time forward by dt seconds and runs every task
// that became due, earliest first. Returns the number of tasks run.
func (s *Scheduler) Advance(dt float64) int {
	if dt > 0 {
		s.now += dt
	}
	fired := 0
	for {
		idx := -1
		for i, t := range s.tasks {
			if t.due > s.now {
				continue
			}
			if idx < 0 || t.due < s.tasks[idx].due ||
				(t.due == s.tasks[idx].due && t.id < s.tasks[idx].id) {
				idx = i
			}
		}
		if idx < 0 {
			return fired
		}
		t := s.tasks[idx]
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		if t.gen != s.gen || t.stale() {
			continue
		}
		t.fn()
		fired++
	}
}

// CancelAll drops every pending task and invalidates callbacks captured
// before the call. Games call it on reset.
func (s *Scheduler) CancelAll() {
	s.tasks = s.tasks[:0]
	s.gen++
}

// Generation returns the reset generation.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// Track ties tasks scheduled from now on to the current run of sess.
// They are dropped once sess is reset, even if CancelAll is never called.
// A nil session stops tracking.
func (s *Scheduler) Track(sess *Session) {
	s.run = sess
}

func (s *Scheduler) runGeneration() uint64 {
	if s.run == nil {
		return 0
	}
	return s.run.Generation()
}

func (t *task) stale() bool {
	return t.run != nil && t.run.Generation() != t.runGen
}
