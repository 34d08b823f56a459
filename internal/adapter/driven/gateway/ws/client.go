package ws

import "github.com/Wyydra/settingsync/internal/core/domain"

type Client interface {
	ID() string
	SendEvent(ev domain.Event) error
	Close() error
}
