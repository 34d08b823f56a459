package domain

type Participant struct {
	ID     ParticipantID `json:"id"`
	Local  bool          `json:"local"`
	Fields Fields        `json:"fields"`
}

func NewParticipant(local bool, fields Fields) Participant {
	return Participant{
		ID:     NewParticipantID(),
		Local:  local,
		Fields: fields.Clone(),
	}
}

// Clone returns a copy whose Fields share no storage with p.
func (p Participant) Clone() Participant {
	p.Fields = p.Fields.Clone()
	return p
}

// Matches reports whether other refers to the same record as p: by ID when
// other carries one, otherwise by the local marker.
func (p Participant) Matches(other Participant) bool {
	if !other.ID.IsZero() {
		return p.ID == other.ID
	}
	return other.Local && p.Local
}

func (p Participant) Name() string {
	v, _ := p.Fields.Get(ParticipantName)
	s, _ := v.AsString()
	return s
}
