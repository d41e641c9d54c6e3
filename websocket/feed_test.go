package websocket

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

func roomExists(debateID string) bool {
	roomsMutex.Lock()
	defer roomsMutex.Unlock()
	_, exists := rooms[debateID]
	return exists
}

func clientRegistered(debateID string, conn *websocket.Conn) bool {
	roomsMutex.Lock()
	defer roomsMutex.Unlock()
	room, exists := rooms[debateID]
	if !exists {
		return false
	}
	room.Mutex.Lock()
	defer room.Mutex.Unlock()
	_, joined := room.Clients[conn]
	return joined
}

func TestRoomLifecycle(t *testing.T) {
	first := new(websocket.Conn)
	second := new(websocket.Conn)

	joinRoom("debate1", first, &Client{Conn: first, Email: "alice@example.com"})
	joinRoom("debate1", second, &Client{Conn: second, Email: "bob@example.com"})
	if !roomExists("debate1") {
		t.Fatal("Expected room to exist after joins")
	}

	leaveRoom("debate1", first)
	if !roomExists("debate1") {
		t.Error("Expected room to survive while a subscriber remains")
	}

	leaveRoom("debate1", second)
	if roomExists("debate1") {
		t.Error("Expected empty room to be dropped")
	}

	// Leaving an already-dropped room is a no-op.
	leaveRoom("debate1", second)
}

func TestJoinAlwaysLandsInRegisteredRoom(t *testing.T) {
	// Joins racing disconnects must never strand a subscriber in a room
	// that was deleted from the registry.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			conn := new(websocket.Conn)
			client := &Client{Conn: conn, Email: fmt.Sprintf("user%d@example.com", n)}
			for j := 0; j < 20; j++ {
				joinRoom("debate2", conn, client)
				if !clientRegistered("debate2", conn) {
					t.Errorf("Subscriber %d joined a room missing from the registry", n)
				}
				leaveRoom("debate2", conn)
			}
		}(i)
	}
	wg.Wait()

	if roomExists("debate2") {
		t.Error("Expected room to be dropped once all subscribers left")
	}
}
