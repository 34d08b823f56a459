package port

import (
	"errors"

	"github.com/Wyydra/settingsync/internal/core/domain"
)

// DispatchFunc hands an event to the next pipeline stage and returns what
// that stage returned.
type DispatchFunc func(ev domain.Event) domain.Event

// Store is the handle middleware receives. Dispatch is synchronous and
// re-entrant: it returns only after the event and everything it triggered
// has been processed.
type Store interface {
	Dispatch(ev domain.Event) domain.Event
	GetState() domain.State
}

// Middleware wraps the next stage of the dispatch pipeline.
type Middleware func(store Store) func(next DispatchFunc) DispatchFunc

// Reducer folds one event into the state and returns the new state. It must
// not dispatch.
type Reducer func(state domain.State, ev domain.Event) domain.State

// ErrStopped is returned by store front-ends that no longer accept events.
var ErrStopped = errors.New("store stopped")
