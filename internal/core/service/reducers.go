package service

import (
	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/Wyydra/settingsync/internal/core/port"
)

// Reducers returns the reducer of every feature slice, in the order the
// store applies them.
func Reducers() []port.Reducer {
	return []port.Reducer{
		ReduceConnection,
		ReduceSettings,
		ReduceConference,
		ReduceParticipants,
	}
}

func ReduceConnection(state domain.State, ev domain.Event) domain.State {
	if e, ok := ev.(domain.LocationSet); ok {
		state.Connection.LocationURL = e.LocationURL
	}
	return state
}

// ReduceSettings merges settings patches into the canonical settings.
func ReduceSettings(state domain.State, ev domain.Event) domain.State {
	switch e := ev.(type) {
	case domain.SettingsUpdated:
		state.Settings = state.Settings.Merge(e.Settings)
	case domain.SettingsUpdateRequested:
		state.Settings = state.Settings.Merge(e.Settings)
	}
	return state
}

func ReduceConference(state domain.State, ev domain.Event) domain.State {
	if e, ok := ev.(domain.AudioOnlySet); ok {
		state.Conference.AudioOnly = e.Value
		state.Conference.AudioOnlyFromSettings = e.FromSettings
	}
	return state
}

// ReduceParticipants maintains the participant collection. An update
// replaces the matching record as a whole; updates matching nothing are
// dropped. At most one participant is local.
func ReduceParticipants(state domain.State, ev domain.Event) domain.State {
	switch e := ev.(type) {
	case domain.ParticipantJoined:
		joined := e.Participant.Clone()
		if joined.ID.IsZero() {
			joined.ID = domain.NewParticipantID()
		}
		next := make([]domain.Participant, 0, len(state.Participants)+1)
		for _, p := range state.Participants {
			if p.ID == joined.ID || (joined.Local && p.Local) {
				continue
			}
			next = append(next, p)
		}
		state.Participants = append(next, joined)

	case domain.ParticipantUpdated:
		next := make([]domain.Participant, len(state.Participants))
		for i, p := range state.Participants {
			if p.Matches(e.Participant) {
				updated := e.Participant.Clone()
				if updated.ID.IsZero() {
					updated.ID = p.ID
				}
				updated.Local = p.Local
				next[i] = updated
				continue
			}
			next[i] = p
		}
		state.Participants = next

	case domain.ParticipantLeft:
		next := make([]domain.Participant, 0, len(state.Participants))
		for _, p := range state.Participants {
			if p.ID != e.ID {
				next = append(next, p)
			}
		}
		state.Participants = next
	}
	return state
}
