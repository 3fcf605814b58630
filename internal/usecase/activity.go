package usecase

import (
	"sync"

	"go.uber.org/zap"
)

// ActivityKind classifies what the process is busy with, so the indicator
// can show an operation-specific message.
type ActivityKind string

const (
	ActivityLoad    ActivityKind = "load"
	ActivitySave    ActivityKind = "save"
	ActivityUpdate  ActivityKind = "update"
	ActivityDelete  ActivityKind = "delete"
	ActivityVisit   ActivityKind = "visit"
	ActivityPlan    ActivityKind = "plan"
	ActivityGeocode ActivityKind = "geocode"
)

func (k ActivityKind) Message() string {
	switch k {
	case ActivityLoad:
		return "Loading your places..."
	case ActivitySave:
		return "Adding a new place to the map..."
	case ActivityUpdate:
		return "Updating place details..."
	case ActivityDelete:
		return "Removing place from the map..."
	case ActivityVisit:
		return "Marking as visited..."
	case ActivityPlan:
		return "Moving back to planned..."
	case ActivityGeocode:
		return "Looking up location..."
	default:
		return "Working..."
	}
}

// ActivityState is the current busy indication.
type ActivityState struct {
	Busy    bool         `json:"busy"`
	Kind    ActivityKind `json:"kind,omitempty"`
	Message string       `json:"message,omitempty"`
}

// ActivityTracker counts in-flight operations so overlapping I/O keeps the
// indicator busy until the last one finishes. Subscribers get latest-state
// semantics.
type ActivityTracker struct {
	logger *zap.Logger

	mu      sync.Mutex
	count   int
	state   ActivityState
	subs    map[int]chan ActivityState
	nextSub int
}

func NewActivityTracker(logger *zap.Logger) *ActivityTracker {
	return &ActivityTracker{
		logger: logger,
		subs:   make(map[int]chan ActivityState),
	}
}

// Begin marks one operation in flight. Every Begin must be paired with an
// End; callers defer it around the I/O call.
func (t *ActivityTracker) Begin(kind ActivityKind) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count++
	t.state = ActivityState{Busy: true, Kind: kind, Message: kind.Message()}
	t.emitLocked()
}

// End marks one operation finished; the tracker goes idle when the last
// one does.
func (t *ActivityTracker) End() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count > 0 {
		t.count--
	}
	if t.count == 0 {
		t.state = ActivityState{}
		t.emitLocked()
	}
}

// ForceIdle drops the counter to zero. Error-recovery escape hatch.
func (t *ActivityTracker) ForceIdle() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count = 0
	t.state = ActivityState{}
	t.emitLocked()
}

// State returns the current indication.
func (t *ActivityTracker) State() ActivityState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Subscribe returns a stream of state changes. The current state is
// delivered immediately; a slow consumer only ever misses intermediate
// states, never the latest one.
func (t *ActivityTracker) Subscribe() (<-chan ActivityState, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextSub
	t.nextSub++

	ch := make(chan ActivityState, 1)
	ch <- t.state
	t.subs[id] = ch

	cancel := func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if sub, ok := t.subs[id]; ok {
			delete(t.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (t *ActivityTracker) emitLocked() {
	for _, ch := range t.subs {
		// latest-wins: drop the undelivered previous state
		select {
		case <-ch:
		default:
		}
		ch <- t.state
	}
}
