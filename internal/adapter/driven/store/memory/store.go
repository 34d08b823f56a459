package memory

import (
	"context"

	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/Wyydra/settingsync/internal/core/port"
	"github.com/rs/zerolog/log"
)

// Store holds the application state and runs every event through the
// middleware chain and the reducers. Dispatch is synchronous and re-entrant.
// Store is not safe for concurrent use; see Processor.
//
// implements port.Store
type Store struct {
	state    domain.State
	reducers []port.Reducer
	sinks    []port.EventSink
	dispatch port.DispatchFunc
}

// NewStore builds a store whose pipeline runs middleware in argument order
// before the reducers.
func NewStore(initial domain.State, reducers []port.Reducer, middleware ...port.Middleware) *Store {
	s := &Store{
		state:    initial.Clone(),
		reducers: reducers,
	}

	var d port.DispatchFunc = s.reduce
	for i := len(middleware) - 1; i >= 0; i-- {
		d = middleware[i](s)(d)
	}
	s.dispatch = d

	return s
}

// AddSink registers a sink that receives every event once it is reduced.
func (s *Store) AddSink(sink port.EventSink) {
	s.sinks = append(s.sinks, sink)
}

func (s *Store) Dispatch(ev domain.Event) domain.Event {
	return s.dispatch(ev)
}

// GetState returns a copy of the current state.
func (s *Store) GetState() domain.State {
	return s.state.Clone()
}

func (s *Store) reduce(ev domain.Event) domain.Event {
	state := s.state
	for _, r := range s.reducers {
		state = r(state, ev)
	}
	s.state = state

	log.Debug().Str("event", string(ev.Kind())).Msg("Event reduced")

	for _, sink := range s.sinks {
		if err := sink.Publish(context.Background(), ev); err != nil {
			log.Error().Err(err).Str("event", string(ev.Kind())).Msg("Error publishing event")
		}
	}
	return ev
}
