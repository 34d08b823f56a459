package domain

type Connection struct {
	LocationURL string `json:"locationURL"`
}

type Conference struct {
	AudioOnly             bool `json:"audioOnly"`
	AudioOnlyFromSettings bool `json:"audioOnlyFromSettings"`
}

// State is a snapshot of every feature slice.
type State struct {
	Connection   Connection    `json:"connection"`
	Settings     Fields        `json:"settings"`
	Conference   Conference    `json:"conference"`
	Participants []Participant `json:"participants"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Settings = s.Settings.Clone()
	out.Participants = make([]Participant, len(s.Participants))
	for i, p := range s.Participants {
		out.Participants[i] = p.Clone()
	}
	return out
}

// LocalParticipant returns a copy of the participant marked local.
func (s State) LocalParticipant() (Participant, bool) {
	for _, p := range s.Participants {
		if p.Local {
			return p.Clone(), true
		}
	}
	return Participant{}, false
}

func (s State) Participant(id ParticipantID) (Participant, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Participant{}, false
}
