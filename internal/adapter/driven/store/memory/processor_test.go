package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/Wyydra/settingsync/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startProcessor(t *testing.T, s *Store) *Processor {
	t.Helper()
	p := NewProcessor(s)
	done := make(chan struct{})
	go func() {
		p.Run()
		close(done)
	}()
	t.Cleanup(func() {
		p.Stop()
		<-done
	})
	return p
}

func TestProcessorSubmit(t *testing.T) {
	s, _, _ := newTestStore(t)
	p := startProcessor(t, s)

	state, err := p.Submit(context.Background(), domain.SettingsUpdated{Settings: domain.NewFields(
		domain.F(domain.SettingDisplayName, domain.String("Ann")),
	)})
	require.NoError(t, err)

	local, ok := state.LocalParticipant()
	require.True(t, ok)
	assert.Equal(t, "Ann", local.Name())

	snap, err := p.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, state, snap)
}

func TestProcessorSerialisesSubmits(t *testing.T) {
	s, sink, _ := newTestStore(t)
	p := startProcessor(t, s)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Submit(context.Background(), domain.AudioOnlySet{Value: true})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, err := p.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, sink.events, n)
}

func TestProcessorStopped(t *testing.T) {
	s, _, _ := newTestStore(t)
	p := NewProcessor(s)
	done := make(chan struct{})
	go func() {
		p.Run()
		close(done)
	}()

	p.Stop()
	<-done
	p.Stop()

	_, err := p.Submit(context.Background(), domain.AudioOnlySet{})
	assert.ErrorIs(t, err, port.ErrStopped)
}

func TestProcessorContextCanceled(t *testing.T) {
	s, _, _ := newTestStore(t)
	p := NewProcessor(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
