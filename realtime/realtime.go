package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	dareClients = make(map[string]map[*websocket.Conn]bool) // Map of dare slug to connected clients
	broadcast   = make(chan CounterUpdate)                  // Broadcast channel for updates
	mutex       sync.Mutex                                  // Mutex to protect dareClients map
)

// CounterUpdate carries the current counters of a dare to its watchers
type CounterUpdate struct {
	Slug             string `json:"slug"`
	ViewsCount       int    `json:"views_count"`
	LikesCount       int    `json:"likes_count"`
	CompletionsCount int    `json:"completions_count"`
}

// RegisterClient adds a WebSocket client watching a specific dare
func RegisterClient(slug string, conn *websocket.Conn) {
	mutex.Lock()
	if dareClients[slug] == nil {
		dareClients[slug] = make(map[*websocket.Conn]bool)
	}
	dareClients[slug][conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a specific dare
func UnregisterClient(slug string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := dareClients[slug]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(dareClients, slug)
		}
	}
	mutex.Unlock()
}

// BroadcastCounterUpdate sends updated counters to all clients watching the dare
func BroadcastCounterUpdate(update CounterUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		if clients, exists := dareClients[update.Slug]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
