package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/Wyydra/settingsync/internal/core/port"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

var ErrParticipantNotFound = errors.New("participant not found")

type locationDTO struct {
	LocationURL string `json:"locationURL"`
}

type joinDTO struct {
	Local  bool          `json:"local"`
	Fields domain.Fields `json:"fields"`
}

type errorDTO struct {
	Error string `json:"error"`
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.Processor.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var req locationDTO
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	h.submit(w, r, domain.LocationSet{LocationURL: req.LocationURL}, http.StatusOK)
}

// UpdateSettings takes a flat JSON object of settings fields. Key order in
// the body is the order the fields are applied in.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Fields
	if err := decode(w, r, &settings); err != nil {
		writeError(w, err)
		return
	}
	h.submit(w, r, domain.SettingsUpdated{Settings: settings}, http.StatusOK)
}

func (h *Handler) JoinParticipant(w http.ResponseWriter, r *http.Request) {
	var req joinDTO
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	p := domain.NewParticipant(req.Local, req.Fields)
	state, err := h.Processor.Submit(r.Context(), domain.ParticipantJoined{Participant: p})
	if err != nil {
		writeError(w, err)
		return
	}

	joined, ok := state.Participant(p.ID)
	if !ok {
		writeError(w, ErrParticipantNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, joined)
}

func (h *Handler) LeaveParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseParticipantID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, badRequest(fmt.Errorf("participant id: %w", err)))
		return
	}

	state, err := h.Processor.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if _, ok := state.Participant(id); !ok {
		writeError(w, ErrParticipantNotFound)
		return
	}

	if _, err := h.Processor.Submit(r.Context(), domain.ParticipantLeft{ID: id}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, ev domain.Event, status int) {
	state, err := h.Processor.Submit(r.Context(), ev)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, state)
}

type requestError struct {
	err error
}

func (e requestError) Error() string { return e.err.Error() }
func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return requestError{err: err}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return badRequest(fmt.Errorf("decode body: %w", err))
	}
	return nil
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var reqErr requestError
	switch {
	case errors.As(err, &reqErr):
		status = http.StatusBadRequest
	case errors.Is(err, ErrParticipantNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrStopped):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("Request failed")
	}
	writeJSON(w, status, errorDTO{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}
