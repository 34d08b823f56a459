package http

import (
	"encoding/json"
	"net/http"

	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict to the configured front-end origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSClient struct {
	id   string
	conn *websocket.Conn
}

func (c *WSClient) ID() string {
	return c.id
}

type eventDTO struct {
	Event   domain.EventKind `json:"event"`
	Payload domain.Event     `json:"payload"`
}

func (c *WSClient) SendEvent(ev domain.Event) error {
	return c.conn.WriteJSON(eventDTO{
		Event:   ev.Kind(),
		Payload: ev,
	})
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

// incomingDTO is a command sent by a websocket client.
type incomingDTO struct {
	Type        domain.EventKind `json:"type"`
	LocationURL string           `json:"locationURL"`
	Settings    json.RawMessage  `json:"settings"`
}

func (in incomingDTO) event() (domain.Event, bool) {
	switch in.Type {
	case domain.KindLocationSet:
		return domain.LocationSet{LocationURL: in.LocationURL}, true
	case domain.KindSettingsUpdated:
		var settings domain.Fields
		if len(in.Settings) > 0 {
			if err := json.Unmarshal(in.Settings, &settings); err != nil {
				return nil, false
			}
		}
		return domain.SettingsUpdated{Settings: settings}, true
	default:
		return nil, false
	}
}

// ServeWS streams every dispatched event to the client and accepts
// location_set and settings_updated commands from it.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		return
	}

	client := &WSClient{
		id:   uuid.NewString(),
		conn: conn,
	}

	l := log.With().Str("client_id", client.id).Logger()
	l.Info().Msg("New client connected")

	h.Hub.Register(client)

	defer func() {
		l.Info().Msg("Client disconnected")
		h.Hub.Unregister(client)
	}()

	for {
		var req incomingDTO
		err := conn.ReadJSON(&req)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Error().Err(err).Msg("Unexpected close error")
			}
			break
		}

		ev, ok := req.event()
		if !ok {
			l.Warn().Str("type", string(req.Type)).Msg("Ignoring unknown command")
			continue
		}
		if _, err := h.Processor.Submit(r.Context(), ev); err != nil {
			l.Error().Err(err).Msg("Failed to process command")
		}
	}
}
