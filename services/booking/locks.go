package booking

import "sync"

// windowLocks serializes detect-then-write sequences per facility+date.
// Without this, two concurrent requests can both observe "no conflict" and
// both insert overlapping bookings. Reads never take these locks.
//
// The zero value is ready to use.
type windowLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (w *windowLocks) get(facilityID, date string) *sync.Mutex {
	key := facilityID + "|" + date
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.locks == nil {
		w.locks = make(map[string]*sync.Mutex)
	}
	l, ok := w.locks[key]
	if !ok {
		l = &sync.Mutex{}
		w.locks[key] = l
	}
	return l
}
