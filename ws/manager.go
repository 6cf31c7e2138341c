package ws

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

// ErrNotConnected is returned when a message is sent to a user without a
// live socket.
var ErrNotConnected = errors.New("user not connected")

// Manager keeps track of the live socket per user. A user has at most
// one connection; a reconnect replaces the previous one.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn // userID -> conn
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string]*websocket.Conn)}
}

// Register stores the user's connection. An existing connection for the
// same user is closed, which unblocks its handler's read loop.
func (m *Manager) Register(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.connections[userID]; ok && old != conn {
		_ = old.Close()
	}
	m.connections[userID] = conn
}

// Unregister drops the given connection for the user. The entry is only
// removed while it still points at conn: the handler of a connection that
// was replaced by a reconnect must not tear down the fresh one.
func (m *Manager) Unregister(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_ = conn.Close()
	if m.connections[userID] == conn {
		delete(m.connections, userID)
	}
}

// SendToUser writes a text message to the user's live socket.
func (m *Manager) SendToUser(userID string, payload []byte) error {
	m.mu.RLock()
	conn, ok := m.connections[userID]
	m.mu.RUnlock()
	if !ok || conn == nil {
		return ErrNotConnected
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// IsConnected reports whether the user has a live socket.
func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.connections[userID]
	return ok
}

// List returns the ids of the currently connected users.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}
