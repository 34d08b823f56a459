package domain

import (
	"github.com/google/uuid"
)

type ParticipantID uuid.UUID

func NewParticipantID() ParticipantID {
	return ParticipantID(uuid.New())
}

func ParseParticipantID(s string) (ParticipantID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ParticipantID{}, err
	}
	return ParticipantID(id), nil
}

func (id ParticipantID) IsZero() bool {
	return id == ParticipantID{}
}

func (id ParticipantID) String() string {
	return uuid.UUID(id).String()
}

func (id ParticipantID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}
