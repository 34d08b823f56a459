package memory

import (
	"context"
	"sync"

	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/Wyydra/settingsync/internal/core/port"
	"github.com/rs/zerolog/log"
)

type request struct {
	ev    domain.Event // nil for a snapshot read
	reply chan domain.State
}

// Processor owns a Store on a single goroutine. Events submitted from any
// goroutine are processed one at a time, each to completion including the
// events it triggers.
type Processor struct {
	store    *Store
	requests chan request
	quit     chan struct{}
	stopOnce sync.Once
}

func NewProcessor(store *Store) *Processor {
	return &Processor{
		store:    store,
		requests: make(chan request),
		quit:     make(chan struct{}),
	}
}

func (p *Processor) Run() {
	for {
		select {
		case <-p.quit:
			log.Info().Msg("Stopping processor")
			return

		case req := <-p.requests:
			if req.ev != nil {
				log.Debug().Str("event", string(req.ev.Kind())).Msg("Processing event")
				p.store.Dispatch(req.ev)
			}
			req.reply <- p.store.GetState()
		}
	}
}

// Submit dispatches ev and returns the state once ev and all events it
// triggered have been processed.
func (p *Processor) Submit(ctx context.Context, ev domain.Event) (domain.State, error) {
	return p.do(ctx, request{ev: ev, reply: make(chan domain.State, 1)})
}

func (p *Processor) Snapshot(ctx context.Context) (domain.State, error) {
	return p.do(ctx, request{reply: make(chan domain.State, 1)})
}

func (p *Processor) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
}

func (p *Processor) do(ctx context.Context, req request) (domain.State, error) {
	select {
	case p.requests <- req:
	case <-p.quit:
		return domain.State{}, port.ErrStopped
	case <-ctx.Done():
		return domain.State{}, ctx.Err()
	}

	select {
	case state := <-req.reply:
		return state, nil
	case <-ctx.Done():
		return domain.State{}, ctx.Err()
	}
}
