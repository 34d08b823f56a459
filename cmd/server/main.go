package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Wyydra/settingsync/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/settingsync/internal/adapter/driven/store/memory"
	"github.com/Wyydra/settingsync/internal/adapter/driven/urlparams"
	handler "github.com/Wyydra/settingsync/internal/adapter/driving/http"
	"github.com/Wyydra/settingsync/internal/config"
	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/Wyydra/settingsync/internal/core/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	w := zerolog.ConsoleWriter{Out: os.Stdout}
	log.Logger = zerolog.New(w).With().Timestamp().Caller().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	lvl, _ := cfg.Level()
	zerolog.SetGlobalLevel(lvl)

	hub := ws.NewHub()

	store := memory.NewStore(domain.State{}, service.Reducers(), service.SettingsMiddleware(urlparams.Parse))
	store.AddSink(hub)
	processor := memory.NewProcessor(store)

	h := handler.NewHandler(processor, hub)

	go hub.Run()
	go processor.Run()

	if err := bootstrap(context.Background(), processor, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed initial state")
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h.NewRouter(),
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	processor.Stop()
	hub.Stop()
	log.Info().Msg("Server exited")
}

// bootstrap joins the local participant and applies the configured location
// and display name through the regular pipeline.
func bootstrap(ctx context.Context, p *memory.Processor, cfg config.Config) error {
	local := domain.NewParticipant(true, domain.Fields{})
	if _, err := p.Submit(ctx, domain.ParticipantJoined{Participant: local}); err != nil {
		return err
	}

	if cfg.LocationURL != "" {
		if _, err := p.Submit(ctx, domain.LocationSet{LocationURL: cfg.LocationURL}); err != nil {
			return err
		}
	}

	if cfg.DisplayName != "" {
		settings := domain.NewFields(domain.F(domain.SettingDisplayName, domain.String(cfg.DisplayName)))
		if _, err := p.Submit(ctx, domain.SettingsUpdated{Settings: settings}); err != nil {
			return err
		}
	}
	return nil
}
