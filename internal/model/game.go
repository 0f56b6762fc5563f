package model

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

var ErrSubscriberExists = errors.New("subscriber already registered")

// Subscriber receives every published snapshot. *websocket.Conn satisfies it.
type Subscriber interface {
	WriteJSON(v interface{}) error
}

// The subscribers watching a specific game
type GameConnections struct {
	connections map[string]Subscriber // clientID -> subscriber
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Subscriber),
	}
}

// Game owns the current snapshot of one board. Operations are serialized
// and each one publishes exactly one snapshot before returning.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		state:       NewGameState(),
		connections: NewGameConnections(),
	}
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

func (g *Game) Start() GameState {
	return g.apply(func(s GameState) GameState { return s.Start() })
}

func (g *Game) Reset() GameState {
	return g.apply(func(s GameState) GameState { return s.Reset() })
}

func (g *Game) SelectSquare(pos Position) GameState {
	return g.apply(func(s GameState) GameState { return s.SelectSquare(pos) })
}

func (g *Game) apply(op func(GameState) GameState) GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	prevMoves := len(g.state.Moves)
	g.state = op(g.state)
	if len(g.state.Moves) > prevMoves {
		last := g.state.Moves[len(g.state.Moves)-1]
		log.Infof("game %s: %s played %s, check=%t checkmate=%t", g.ID, last.Piece.Color, last, g.state.IsCheck, g.state.IsCheckmate)
	}
	g.broadcastState(g.state)
	return g.state
}

func (g *Game) RegisterConnection(clientID string, sub Subscriber) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		g.connections.mu.Unlock()
		return ErrSubscriberExists
	}
	g.connections.connections[clientID] = sub
	g.connections.mu.Unlock()
	log.Debugf("game %s: registered subscriber %s", g.ID, clientID)

	// Send initial state
	g.mu.Lock()
	defer g.mu.Unlock()
	g.send(clientID, sub, g.state)
	return nil
}

func (g *Game) UnregisterConnection(clientID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[clientID]; exists {
		log.Debugf("game %s: unregistering subscriber %s", g.ID, clientID)
		delete(g.connections.connections, clientID)
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// broadcastState runs under g.mu so subscribers see snapshots in the
// order operations were applied.
func (g *Game) broadcastState(state GameState) {
	g.connections.mu.RLock()
	activeConnections := make(map[string]Subscriber, len(g.connections.connections))
	for clientID, sub := range g.connections.connections {
		activeConnections[clientID] = sub
	}
	g.connections.mu.RUnlock()

	for clientID, sub := range activeConnections {
		g.send(clientID, sub, state)
	}
}

func (g *Game) send(clientID string, sub Subscriber, state GameState) {
	msg, err := NewStateMessage(state)
	if err != nil {
		log.Errorf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}
	if err := sub.WriteJSON(msg); err != nil {
		log.Warnf("game %s: failed to send state to %s, dropping: %v", g.ID, clientID, err)
		g.UnregisterConnection(clientID)
	}
}

func NewStateMessage(state GameState) (ws.Message, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return ws.Message{}, err
	}
	return ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}, nil
}
