package websocket

import (
	"log"
	"sync"

	"github.com/centraladventures/trips_backend/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type MessagePayload struct {
	Content string `json:"content"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.ChatMessage)

// RunHub fans chat messages out to every connected member. The club chat is a
// single shared room, so a message goes to everyone except its sender.
func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Chat client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Chat client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			clientsMu.RLock()
			stale := []uuid.UUID{}
			for memberID, conn := range clients {
				if memberID == message.SenderID {
					continue
				}
				if err := conn.WriteJSON(message); err != nil {
					log.Printf("Error sending chat message to client %s: %v", memberID, err)
					conn.Close()
					stale = append(stale, memberID)
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, memberID := range stale {
					delete(clients, memberID)
				}
				clientsMu.Unlock()
			}
		}
	}
}
