package domain

// URL parameters carrying device preferences.
const (
	ParamAudioOutput = "devices.audioOutput"
	ParamVideoInput  = "devices.videoInput"
	ParamAudioInput  = "devices.audioInput"
)

// DeviceSelection names the devices requested through the location URL. An
// empty ID means the device was not specified.
type DeviceSelection struct {
	AudioOutputDeviceID string
	CameraDeviceID      string
	MicDeviceID         string
}

// DeviceSelectionFromParams picks the device parameters out of params.
// ok is false when none of them is set to a non-empty value.
func DeviceSelectionFromParams(params map[string]string) (sel DeviceSelection, ok bool) {
	sel = DeviceSelection{
		AudioOutputDeviceID: params[ParamAudioOutput],
		CameraDeviceID:      params[ParamVideoInput],
		MicDeviceID:         params[ParamAudioInput],
	}
	if sel.IsEmpty() {
		return DeviceSelection{}, false
	}
	return sel, true
}

func (d DeviceSelection) IsEmpty() bool {
	return d.AudioOutputDeviceID == "" && d.CameraDeviceID == "" && d.MicDeviceID == ""
}

// Settings returns the selection as a settings patch holding only the
// devices that were specified.
func (d DeviceSelection) Settings() PartialSettings {
	var s PartialSettings
	if d.AudioOutputDeviceID != "" {
		s.Set(SettingAudioOutputDeviceID, String(d.AudioOutputDeviceID))
	}
	if d.CameraDeviceID != "" {
		s.Set(SettingCameraDeviceID, String(d.CameraDeviceID))
	}
	if d.MicDeviceID != "" {
		s.Set(SettingMicDeviceID, String(d.MicDeviceID))
	}
	return s
}
