package service

import (
	"testing"

	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reduceAll(state domain.State, evs ...domain.Event) domain.State {
	for _, ev := range evs {
		for _, r := range Reducers() {
			state = r(state, ev)
		}
	}
	return state
}

func TestReduceConnectionAndConference(t *testing.T) {
	state := reduceAll(domain.State{},
		domain.LocationSet{LocationURL: "https://x/room"},
		domain.AudioOnlySet{Value: true, FromSettings: true},
	)
	assert.Equal(t, "https://x/room", state.Connection.LocationURL)
	assert.Equal(t, domain.Conference{AudioOnly: true, AudioOnlyFromSettings: true}, state.Conference)

	state = reduceAll(state, domain.AudioOnlySet{Value: false})
	assert.Equal(t, domain.Conference{}, state.Conference)
}

func TestReduceSettingsMerges(t *testing.T) {
	state := reduceAll(domain.State{},
		domain.SettingsUpdated{Settings: domain.NewFields(
			domain.F(domain.SettingDisplayName, domain.String("Ann")),
			domain.F(domain.SettingStartAudioOnly, domain.Bool(false)),
		)},
		domain.SettingsUpdateRequested{Settings: domain.NewFields(
			domain.F(domain.SettingMicDeviceID, domain.String("mic7")),
			domain.F(domain.SettingDisplayName, domain.String("Bob")),
		)},
	)

	assert.Equal(t, []string{"displayName", "startAudioOnly", "micDeviceId"}, state.Settings.Keys())
	v, _ := state.Settings.Get(domain.SettingDisplayName)
	assert.Equal(t, domain.String("Bob"), v)
}

func TestReduceSettingsDoesNotAliasPrevious(t *testing.T) {
	before := reduceAll(domain.State{}, domain.SettingsUpdated{Settings: domain.NewFields(domain.F("a", domain.String("1")))})
	after := reduceAll(before, domain.SettingsUpdated{Settings: domain.NewFields(domain.F("a", domain.String("2")))})

	v, _ := before.Settings.Get("a")
	assert.Equal(t, domain.String("1"), v)
	v, _ = after.Settings.Get("a")
	assert.Equal(t, domain.String("2"), v)
}

func TestReduceParticipants(t *testing.T) {
	local := domain.NewParticipant(true, domain.NewFields(domain.F("name", domain.String("Ann"))))
	remote := domain.NewParticipant(false, domain.NewFields(domain.F("name", domain.String("Rem"))))

	state := reduceAll(domain.State{},
		domain.ParticipantJoined{Participant: local},
		domain.ParticipantJoined{Participant: remote},
	)
	require.Len(t, state.Participants, 2)

	t.Run("update replaces local by marker", func(t *testing.T) {
		replacement := domain.Participant{Local: true, Fields: domain.NewFields(domain.F("name", domain.String("New")))}
		next := reduceAll(state, domain.ParticipantUpdated{Participant: replacement})

		got, ok := next.LocalParticipant()
		require.True(t, ok)
		assert.Equal(t, local.ID, got.ID)
		assert.Equal(t, []string{"name"}, got.Fields.Keys())
		assert.Equal(t, "New", got.Name())
		assert.Equal(t, "Ann", state.Participants[0].Name())
	})

	t.Run("update by id", func(t *testing.T) {
		replacement := remote.Clone()
		replacement.Fields.Set("name", domain.String("Renamed"))
		next := reduceAll(state, domain.ParticipantUpdated{Participant: replacement})

		got, ok := next.Participant(remote.ID)
		require.True(t, ok)
		assert.Equal(t, "Renamed", got.Name())
		assert.False(t, got.Local)
	})

	t.Run("update matching nothing is dropped", func(t *testing.T) {
		next := reduceAll(state, domain.ParticipantUpdated{Participant: domain.Participant{ID: domain.NewParticipantID()}})
		assert.Equal(t, state.Participants, next.Participants)
	})

	t.Run("second local replaces the first", func(t *testing.T) {
		other := domain.NewParticipant(true, domain.Fields{})
		next := reduceAll(state, domain.ParticipantJoined{Participant: other})
		require.Len(t, next.Participants, 2)
		got, _ := next.LocalParticipant()
		assert.Equal(t, other.ID, got.ID)
	})

	t.Run("joined without id gets one", func(t *testing.T) {
		next := reduceAll(state, domain.ParticipantJoined{Participant: domain.Participant{}})
		require.Len(t, next.Participants, 3)
		assert.False(t, next.Participants[2].ID.IsZero())
	})

	t.Run("leave", func(t *testing.T) {
		next := reduceAll(state, domain.ParticipantLeft{ID: remote.ID})
		require.Len(t, next.Participants, 1)
		assert.Equal(t, local.ID, next.Participants[0].ID)
	})
}
