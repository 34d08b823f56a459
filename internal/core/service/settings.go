package service

import (
	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/Wyydra/settingsync/internal/core/port"
	"github.com/rs/zerolog/log"
)

// reactor derives follow-up events from one event and a state snapshot.
type reactor func(state domain.State, ev domain.Event) []domain.Event

// SettingsMiddleware distributes changes of the settings and connection
// slices to the conference and participant slices. The event is always
// passed to next first; follow-up events are dispatched afterwards, each
// reactor reading the state left by the previous one.
func SettingsMiddleware(extract port.URLParamExtractor) port.Middleware {
	return func(store port.Store) func(next port.DispatchFunc) port.DispatchFunc {
		return func(next port.DispatchFunc) port.DispatchFunc {
			return func(ev domain.Event) domain.Event {
				result := next(ev)

				for _, react := range reactorsFor(ev, extract) {
					for _, follow := range react(store.GetState(), ev) {
						log.Debug().
							Str("cause", string(ev.Kind())).
							Str("event", string(follow.Kind())).
							Msg("Dispatching settings follow-up")
						store.Dispatch(follow)
					}
				}

				return result
			}
		}
	}
}

// Propagate returns the events SettingsMiddleware would dispatch for ev,
// computed against a single snapshot.
func Propagate(state domain.State, ev domain.Event, extract port.URLParamExtractor) []domain.Event {
	var out []domain.Event
	for _, react := range reactorsFor(ev, extract) {
		out = append(out, react(state, ev)...)
	}
	return out
}

func reactorsFor(ev domain.Event, extract port.URLParamExtractor) []reactor {
	switch ev.(type) {
	case domain.LocationSet:
		return []reactor{
			func(state domain.State, _ domain.Event) []domain.Event {
				return DevicesFromLocation(state, extract)
			},
		}
	case domain.SettingsUpdated:
		return []reactor{
			func(_ domain.State, ev domain.Event) []domain.Event {
				return AudioOnlyFromSettings(ev.(domain.SettingsUpdated).Settings)
			},
			func(state domain.State, ev domain.Event) []domain.Event {
				return LocalParticipantFromSettings(state, ev.(domain.SettingsUpdated).Settings)
			},
		}
	default:
		return nil
	}
}

// DevicesFromURL resolves the device selection carried by the connection's
// location URL.
func DevicesFromURL(state domain.State, extract port.URLParamExtractor) (domain.DeviceSelection, bool) {
	return domain.DeviceSelectionFromParams(extract(state.Connection.LocationURL))
}

// DevicesFromLocation requests a settings update when the location URL names
// any device.
func DevicesFromLocation(state domain.State, extract port.URLParamExtractor) []domain.Event {
	devices, ok := DevicesFromURL(state, extract)
	if !ok {
		return nil
	}
	return []domain.Event{domain.SettingsUpdateRequested{Settings: devices.Settings()}}
}

// AudioOnlyFromSettings forces the conference audio-only flag when the patch
// sets startAudioOnly to a boolean. Values of any other kind are ignored.
func AudioOnlyFromSettings(settings domain.PartialSettings) []domain.Event {
	v, ok := settings.Get(domain.SettingStartAudioOnly)
	if !ok {
		return nil
	}
	audioOnly, ok := v.AsBool()
	if !ok {
		return nil
	}
	return []domain.Event{domain.AudioOnlySet{Value: audioOnly, FromSettings: true}}
}

// LocalParticipantFromSettings copies the settings patch onto the local
// participant and returns the merged record. Without a local participant the
// patch is applied to an empty record carrying only the local marker.
func LocalParticipantFromSettings(state domain.State, settings domain.PartialSettings) []domain.Event {
	local, found := state.LocalParticipant()
	updated := local.Clone()
	if !found {
		updated.Local = true
	}

	settings.Each(func(key string, v domain.Value) {
		updated.Fields.Set(domain.ParticipantField(key), v)
	})

	return []domain.Event{domain.ParticipantUpdated{Participant: updated}}
}
