package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"restaurant_manager/database"

	"github.com/gofiber/contrib/websocket"
)

const operationsChannel = "operations"

var (
	opsClients = make(map[*websocket.Conn]bool)
	opsMu      sync.Mutex
)

// OperationsFeed streams booking/event/pre-order activity to admin
// dashboards. Fan-out goes through redis so multiple instances stay in sync.
func OperationsFeed(c *websocket.Conn) {
	defer func() {
		opsMu.Lock()
		delete(opsClients, c)
		opsMu.Unlock()
		c.Close()
	}()

	opsMu.Lock()
	opsClients[c] = true
	opsMu.Unlock()

	if database.Redis == nil {
		return
	}

	pubsub := database.Redis.Subscribe(context.Background(), operationsChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		opsMu.Lock()
		for conn := range opsClients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(opsClients, conn)
			}
		}
		opsMu.Unlock()
	}
}

// PublishOperation pushes one activity record onto the feed. Best effort:
// a dead redis only costs the live feed, never the request.
func PublishOperation(kind string, data any) {
	if database.Redis == nil {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"type": kind,
		"data": data,
		"at":   time.Now().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("marshal operation %s: %v", kind, err)
		return
	}

	if err := database.Redis.Publish(context.Background(), operationsChannel, payload).Err(); err != nil {
		log.Printf("publish operation %s: %v", kind, err)
	}
}
