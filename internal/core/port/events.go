package port

import (
	"context"

	"github.com/Wyydra/settingsync/internal/core/domain"
)

// EventSink receives every event after the store has processed it.
type EventSink interface {
	Publish(ctx context.Context, ev domain.Event) error
}
