package websocket

import (
	"log"
	"net/http"
	"sync"

	"agorahub/models"
	"agorahub/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Room holds the live-feed subscribers of one debate.
type Room struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.Mutex
}

// Client represents a connected subscriber
type Client struct {
	Conn  *websocket.Conn
	Email string
}

// Event is a live-feed message pushed to subscribers.
type Event struct {
	Type     string           `json:"type"`
	DebateID string           `json:"debateId"`
	Argument *models.Argument `json:"argument,omitempty"`
}

var rooms = make(map[string]*Room)
var roomsMutex sync.Mutex

// joinRoom registers a subscriber, creating the room if needed. Holding
// roomsMutex for the whole operation keeps a join from landing in a room
// a concurrent disconnect is about to delete.
func joinRoom(debateID string, conn *websocket.Conn, client *Client) {
	roomsMutex.Lock()
	defer roomsMutex.Unlock()

	room, exists := rooms[debateID]
	if !exists {
		room = &Room{Clients: make(map[*websocket.Conn]*Client)}
		rooms[debateID] = room
		log.Printf("Created feed room for debate %s", debateID)
	}

	room.Mutex.Lock()
	room.Clients[conn] = client
	room.Mutex.Unlock()
}

// leaveRoom removes a subscriber and drops the room once empty.
func leaveRoom(debateID string, conn *websocket.Conn) {
	roomsMutex.Lock()
	defer roomsMutex.Unlock()

	room, exists := rooms[debateID]
	if !exists {
		return
	}

	room.Mutex.Lock()
	delete(room.Clients, conn)
	empty := len(room.Clients) == 0
	room.Mutex.Unlock()

	if empty {
		delete(rooms, debateID)
	}
}

// DebateFeedHandler upgrades the connection and subscribes the caller to
// a debate's argument feed. The token travels as a query parameter since
// browsers cannot set headers on websocket dials.
func DebateFeedHandler(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		log.Println("WebSocket connection failed: missing token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	valid, email, err := utils.ValidateTokenAndFetchEmail(token)
	if err != nil || !valid || email == "" {
		log.Printf("WebSocket connection failed: invalid token - %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	debateID := c.Param("id")
	if debateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing debate id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	joinRoom(debateID, conn, &Client{Conn: conn, Email: email})
	defer func() {
		leaveRoom(debateID, conn)
		conn.Close()
	}()

	// The feed is one-way; the read loop only watches for disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("Feed subscriber %s left debate %s: %v", email, debateID, err)
			return
		}
	}
}

// BroadcastArgument pushes a newly posted argument to a debate's subscribers.
func BroadcastArgument(debateID string, argument models.Argument) {
	roomsMutex.Lock()
	room, exists := rooms[debateID]
	roomsMutex.Unlock()
	if !exists {
		return
	}

	event := Event{
		Type:     "argument.created",
		DebateID: debateID,
		Argument: &argument,
	}

	room.Mutex.Lock()
	defer room.Mutex.Unlock()
	for conn, client := range room.Clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("Failed to push argument to %s: %v", client.Email, err)
			conn.Close()
			delete(room.Clients, conn)
		}
	}
}
