package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockEvent is pushed to every connected client after a mutation commits.
type StockEvent struct {
	ID      string          `json:"id"`
	Action  string          `json:"action"` // fruit_created | fruit_updated
	FruitID uint            `json:"fruit_id,omitempty"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock"`
	At      time.Time       `json:"at"`
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

// Publish stamps the event and queues it for broadcast.
func (h *Hub) Publish(ev StockEvent) {
	ev.ID = uuid.NewString()
	ev.At = time.Now()

	msg, err := json.Marshal(ev)
	if err != nil {
		log.Printf("marshal stock event: %v", err)
		return
	}
	h.Broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
