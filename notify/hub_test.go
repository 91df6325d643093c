package notify

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.Upgrade))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForAdmins(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.AdminCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("admin count never reached %d (have %d)", want, hub.AdminCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubNotifiesLoggedInAdmins(t *testing.T) {
	hub := NewHub("")
	conn := dialHub(t, hub)

	if err := conn.WriteJSON(map[string]string{"type": "admin-login", "email": "ana@example.com"}); err != nil {
		t.Fatalf("write admin-login: %v", err)
	}
	waitForAdmins(t, hub, 1)

	hub.NotifyAdmins("new-contact", map[string]string{"name": "Ana"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var evt Event
	if err := conn.ReadJSON(&evt); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if evt.Type != "new-contact" {
		t.Fatalf("event type = %q, want new-contact", evt.Type)
	}
	if evt.Timestamp.IsZero() {
		t.Fatalf("event timestamp not set")
	}
}

func TestHubConcurrentFanOut(t *testing.T) {
	hub := NewHub("")
	connA := dialHub(t, hub)
	connB := dialHub(t, hub)

	for _, conn := range []*websocket.Conn{connA, connB} {
		if err := conn.WriteJSON(map[string]string{"type": "admin-login", "email": "ana@example.com"}); err != nil {
			t.Fatalf("write admin-login: %v", err)
		}
	}
	waitForAdmins(t, hub, 2)

	const events = 20
	var wg sync.WaitGroup
	for i := 0; i < events; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.NotifyAdmins("new-contact", nil)
		}()
	}
	wg.Wait()

	for _, conn := range []*websocket.Conn{connA, connB} {
		for i := 0; i < events; i++ {
			_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
			var evt Event
			if err := conn.ReadJSON(&evt); err != nil {
				t.Fatalf("read event %d: %v", i, err)
			}
			if evt.Type != "new-contact" {
				t.Fatalf("event type = %q, want new-contact", evt.Type)
			}
		}
	}
}

func TestHubSkipsAnonymousSessions(t *testing.T) {
	hub := NewHub("")
	conn := dialHub(t, hub)

	// Never identifies as admin: must receive nothing.
	hub.NotifyAdmins("new-contact", nil)

	_ = conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	var evt Event
	if err := conn.ReadJSON(&evt); err == nil {
		t.Fatalf("anonymous session received event %+v", evt)
	}
}

func TestHubLogoutStopsNotifications(t *testing.T) {
	hub := NewHub("")
	conn := dialHub(t, hub)

	if err := conn.WriteJSON(map[string]string{"type": "admin-login", "email": "ana@example.com"}); err != nil {
		t.Fatalf("write admin-login: %v", err)
	}
	waitForAdmins(t, hub, 1)

	if err := conn.WriteJSON(map[string]string{"type": "admin-logout"}); err != nil {
		t.Fatalf("write admin-logout: %v", err)
	}
	waitForAdmins(t, hub, 0)

	hub.NotifyAdmins("new-contact", nil)
	_ = conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	var evt Event
	if err := conn.ReadJSON(&evt); err == nil {
		t.Fatalf("logged-out session received event %+v", evt)
	}
}
