package notify

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Event is the envelope pushed to connected admin sessions.
type Event struct {
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

type clientMessage struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

type session struct {
	conn        *websocket.Conn
	writeMu     sync.Mutex
	admin       bool
	adminEmail  string
	connectedAt time.Time
}

func (s *session) send(evt Event) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(evt)
}

// Hub tracks websocket sessions and fans admin notifications out to the
// sessions that identified themselves as logged-in admins.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	sessions map[*session]struct{}
}

// NewHub builds a hub that accepts upgrades from the given origin.
// An empty origin allows any (development).
func NewHub(allowedOrigin string) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		sessions: make(map[*session]struct{}),
	}
}

// Upgrade accepts a websocket connection and runs its read loop until the
// client disconnects.
func (h *Hub) Upgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	s := &session{conn: conn, connectedAt: time.Now()}
	h.mu.Lock()
	h.sessions[s] = struct{}{}
	h.mu.Unlock()

	go h.readLoop(s)
}

func (h *Hub) readLoop(s *session) {
	defer h.remove(s)
	for {
		var msg clientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			return
		}
		switch msg.Type {
		case "admin-login":
			h.mu.Lock()
			s.admin = true
			s.adminEmail = msg.Email
			h.mu.Unlock()
			log.WithField("email", msg.Email).Info("admin session connected")
		case "admin-logout":
			h.mu.Lock()
			s.admin = false
			s.adminEmail = ""
			h.mu.Unlock()
		}
	}
}

func (h *Hub) remove(s *session) {
	h.mu.Lock()
	delete(h.sessions, s)
	h.mu.Unlock()
	_ = s.conn.Close()
}

// NotifyAdmins sends an event envelope to every logged-in admin session.
// Failed sends drop the session. The session set is snapshotted up front so
// one slow socket cannot stall the hub or the other admins.
func (h *Hub) NotifyAdmins(eventType string, data any) {
	evt := Event{Type: eventType, Data: data, Timestamp: time.Now()}

	type target struct {
		s     *session
		email string
	}
	h.mu.Lock()
	targets := make([]target, 0, len(h.sessions))
	for s := range h.sessions {
		if s.admin {
			targets = append(targets, target{s: s, email: s.adminEmail})
		}
	}
	h.mu.Unlock()

	for _, t := range targets {
		if err := t.s.send(evt); err != nil {
			log.WithError(err).WithField("email", t.email).Warn("websocket send failed")
			h.remove(t.s)
		}
	}
}

// AdminCount reports how many logged-in admin sessions are connected.
func (h *Hub) AdminCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for s := range h.sessions {
		if s.admin {
			n++
		}
	}
	return n
}
