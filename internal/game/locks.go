package game

import "sync"

// roomLocks serializes mutating operations per room ID. Two near-simultaneous
// actions from the two participants of the same room must not interleave their
// load-compute-save cycles, or a flag update is silently lost; rooms are
// independent, so there is no global lock.
type roomLocks struct {
	mu    sync.Mutex
	locks map[string]*roomLock
}

type roomLock struct {
	mu   sync.Mutex
	refs int
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[string]*roomLock)}
}

// acquire blocks until the caller holds the exclusive lock for roomID and
// returns the matching release func.
func (l *roomLocks) acquire(roomID string) func() {
	l.mu.Lock()
	rl, ok := l.locks[roomID]
	if !ok {
		rl = &roomLock{}
		l.locks[roomID] = rl
	}
	rl.refs++
	l.mu.Unlock()

	rl.mu.Lock()

	return func() {
		rl.mu.Unlock()
		l.mu.Lock()
		rl.refs--
		if rl.refs == 0 {
			delete(l.locks, roomID)
		}
		l.mu.Unlock()
	}
}
