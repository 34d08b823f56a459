package domain

type EventKind string

const (
	KindLocationSet             EventKind = "location_set"
	KindSettingsUpdated         EventKind = "settings_updated"
	KindSettingsUpdateRequested EventKind = "settings_update_requested"
	KindAudioOnlySet            EventKind = "audio_only_set"
	KindParticipantUpdated      EventKind = "participant_updated"
	KindParticipantJoined       EventKind = "participant_joined"
	KindParticipantLeft         EventKind = "participant_left"
)

// Event is the closed set of things dispatched through the store. Only types
// in this package implement it.
type Event interface {
	Kind() EventKind
	event()
}

// LocationSet records a new location URL for the connection.
type LocationSet struct {
	LocationURL string `json:"locationURL"`
}

// SettingsUpdated announces a change to the settings slice.
type SettingsUpdated struct {
	Settings PartialSettings `json:"settings"`
}

// SettingsUpdateRequested asks the settings feature to merge Settings into
// its state.
type SettingsUpdateRequested struct {
	Settings PartialSettings `json:"settings"`
}

type AudioOnlySet struct {
	Value bool `json:"value"`
	// FromSettings is set when the change was forced by settings rather than
	// toggled by the user.
	FromSettings bool `json:"fromSettings"`
}

// ParticipantUpdated carries a complete participant record. Consumers
// replace the matching record with it.
type ParticipantUpdated struct {
	Participant Participant `json:"participant"`
}

type ParticipantJoined struct {
	Participant Participant `json:"participant"`
}

type ParticipantLeft struct {
	ID ParticipantID `json:"id"`
}

func (LocationSet) Kind() EventKind             { return KindLocationSet }
func (SettingsUpdated) Kind() EventKind         { return KindSettingsUpdated }
func (SettingsUpdateRequested) Kind() EventKind { return KindSettingsUpdateRequested }
func (AudioOnlySet) Kind() EventKind            { return KindAudioOnlySet }
func (ParticipantUpdated) Kind() EventKind      { return KindParticipantUpdated }
func (ParticipantJoined) Kind() EventKind       { return KindParticipantJoined }
func (ParticipantLeft) Kind() EventKind         { return KindParticipantLeft }

func (LocationSet) event()             {}
func (SettingsUpdated) event()         {}
func (SettingsUpdateRequested) event() {}
func (AudioOnlySet) event()            {}
func (ParticipantUpdated) event()      {}
func (ParticipantJoined) event()       {}
func (ParticipantLeft) event()         {}
