package domain

// PartialSettings holds only the settings fields being changed.
type PartialSettings = Fields

// Settings field names with special handling.
const (
	SettingStartAudioOnly      = "startAudioOnly"
	SettingDisplayName         = "displayName"
	SettingAudioOutputDeviceID = "audioOutputDeviceId"
	SettingCameraDeviceID      = "cameraDeviceId"
	SettingMicDeviceID         = "micDeviceId"
)

// Participant field names.
const (
	ParticipantName = "name"
)

var settingsToParticipant = map[string]string{
	SettingDisplayName: ParticipantName,
}

// ParticipantField maps a settings field name to the participant field it
// populates. Names without a table entry map to themselves.
func ParticipantField(settingsField string) string {
	if name, ok := settingsToParticipant[settingsField]; ok {
		return name
	}
	return settingsField
}
