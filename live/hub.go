package live

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-dashboard/store"
	"github.com/yeremiapane/restaurant-dashboard/utils"
)

const (
	writeWait = 5 * time.Second

	// sendBuffer is how many messages may queue for one client before it is
	// dropped as too slow.
	sendBuffer = 64
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans store events out to the dashboards connected over WebSocket.
// Each client only receives events about its own restaurant, plus selection
// changes. Every client has its own writer goroutine, so publishing never
// waits on the network.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.Mutex
}

type client struct {
	restaurantID string
	send         chan []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*client)}
}

// Register adds conn and starts its writer. The writer closes conn once the
// client is unregistered or dropped.
func (h *Hub) Register(conn *websocket.Conn, restaurantID string) {
	c := &client{restaurantID: restaurantID, send: make(chan []byte, sendBuffer)}

	h.mutex.Lock()
	h.clients[conn] = c
	h.mutex.Unlock()

	go h.writePump(conn, c)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.removeLocked(conn)
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

func (h *Hub) removeLocked(conn *websocket.Conn) {
	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(c.send)
	}
}

func (h *Hub) writePump(conn *websocket.Conn, c *client) {
	defer conn.Close()
	for data := range c.send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Errorf("Error writing to dashboard client: %v", err)
			h.Unregister(conn)
			return
		}
	}
}

// Attach subscribes the hub to st and returns the unsubscribe function.
func (h *Hub) Attach(st *store.Store) func() {
	return st.Subscribe(h.Publish)
}

// Publish sends the entity touched by ev to interested clients. Mutations
// that matched nothing are not forwarded.
func (h *Hub) Publish(ev store.Event) {
	entity, restaurantID, ok := ev.Entity()
	if !ok {
		return
	}
	if ev.Kind == store.EventRestaurantSelected {
		// every open dashboard must learn about a selection change
		restaurantID = ""
	}
	h.broadcast(restaurantID, Message{
		Event: string(ev.Kind),
		Data:  entity,
	})
}

// broadcast queues msg for clients of restaurantID, or for everyone when
// restaurantID is empty. A client whose queue is full is dropped.
func (h *Hub) broadcast(restaurantID string, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Errorf("Error marshaling live message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, c := range h.clients {
		if restaurantID != "" && c.restaurantID != restaurantID {
			continue
		}
		select {
		case c.send <- data:
		default:
			utils.ErrorLogger.Errorf("Dropping slow dashboard client of restaurant %q", c.restaurantID)
			h.removeLocked(conn)
		}
	}
}
