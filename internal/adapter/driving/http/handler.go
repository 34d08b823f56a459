package http

import (
	"context"
	"net/http"

	"github.com/Wyydra/settingsync/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// StateProcessor serialises events into the store.
type StateProcessor interface {
	Submit(ctx context.Context, ev domain.Event) (domain.State, error)
	Snapshot(ctx context.Context) (domain.State, error)
}

type Handler struct {
	Processor StateProcessor
	Hub       *ws.Hub
}

func NewHandler(processor StateProcessor, hub *ws.Hub) *Handler {
	return &Handler{
		Processor: processor,
		Hub:       hub,
	}
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/state", h.GetState)
	r.Put("/location", h.SetLocation)
	r.Patch("/settings", h.UpdateSettings)
	r.Post("/participants", h.JoinParticipant)
	r.Delete("/participants/{id}", h.LeaveParticipant)

	r.Get("/ws", h.ServeWS)

	return r
}
