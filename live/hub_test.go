package live

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-dashboard/models"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

var upgrader = websocket.Upgrader{}

func newHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(conn, r.URL.Query().Get("restaurant"))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		hub.Unregister(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, restaurantID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?restaurant=" + restaurantID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHubForwardsEventsToOwningRestaurant(t *testing.T) {
	utils.InitLogger()
	hub := NewHub()
	st := store.NewDemo()
	hub.Attach(st)
	srv := newHubServer(t, hub)

	mine := dial(t, srv, "1")
	other := dial(t, srv, "2")
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	st.UpdateOrderStatus("o1", models.OrderPreparing)

	msg := readMessage(t, mine)
	assert.Equal(t, string(store.EventOrderStatusUpdated), msg.Event)
	data := msg.Data.(map[string]interface{})
	assert.Equal(t, "o1", data["id"])
	assert.Equal(t, "preparing", data["status"])

	// restaurant 2 only sees its own toggle
	st.ToggleItemAvailability("m3")
	msg = readMessage(t, other)
	assert.Equal(t, string(store.EventAvailabilityToggled), msg.Event)
	assert.Equal(t, "m3", msg.Data.(map[string]interface{})["id"])
}

func TestHubBroadcastsSelectionToEveryone(t *testing.T) {
	utils.InitLogger()
	hub := NewHub()
	st := store.NewDemo()
	hub.Attach(st)
	srv := newHubServer(t, hub)

	a := dial(t, srv, "1")
	b := dial(t, srv, "3")
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	st.SelectRestaurant("")

	for _, conn := range []*websocket.Conn{a, b} {
		msg := readMessage(t, conn)
		assert.Equal(t, string(store.EventRestaurantSelected), msg.Event)
		assert.Nil(t, msg.Data)
	}
}

func TestHubUnregister(t *testing.T) {
	utils.InitLogger()
	hub := NewHub()
	srv := newHubServer(t, hub)

	conn := dial(t, srv, "1")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubDropsStalledClientWithoutBlocking(t *testing.T) {
	utils.InitLogger()
	hub := NewHub()
	srv := newHubServer(t, hub)

	// never reads, so its socket buffers fill up
	dial(t, srv, "1")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	payload := strings.Repeat("x", 1<<20)
	start := time.Now()
	for i := 0; i < 2*sendBuffer; i++ {
		hub.broadcast("1", Message{Event: "bulk", Data: payload})
	}
	assert.Less(t, time.Since(start), writeWait)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHubUnregisterIsIdempotent(t *testing.T) {
	utils.InitLogger()
	hub := NewHub()
	srv := newHubServer(t, hub)

	conn := dial(t, srv, "1")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.mutex.Lock()
	var server *websocket.Conn
	for c := range hub.clients {
		server = c
	}
	hub.mutex.Unlock()

	hub.Unregister(server)
	hub.Unregister(server)
	assert.Equal(t, 0, hub.ClientCount())

	// the writer closes the server side, which the client sees as an error
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}
