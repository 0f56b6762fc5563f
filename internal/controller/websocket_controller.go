package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// writeWait bounds a single write; a client that stops reading fails the
// write and is dropped from the game.
const writeWait = 5 * time.Second

type jsonConn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
}

// connWriter serializes writes; broadcasts from other connections' goroutines
// and this connection's own error replies share the socket.
type connWriter struct {
	mu   sync.Mutex
	conn jsonConn
}

func (w *connWriter) WriteJSON(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return w.conn.WriteJSON(v)
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	clientID, _ := c.Locals("wsClientID").(string)

	writer := &connWriter{conn: c}

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, clientID, writer); err != nil {
		log.Warnf("failed to register connection for game %s: %v", gameID, err)
		if errors.Is(err, model.ErrSubscriberExists) {
			c.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
			)
		}
		c.Close()
		return
	}
	// Clean up when connection closes
	defer wsc.gameService.UnregisterConnection(gameID, clientID)

	// Start message handling loop
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error for client %s: %v", clientID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("parse error for client %s: %v", clientID, err)
			wsc.sendError(writer, "malformed message")
			continue
		}

		if err := wsc.handleMessage(gameID, msg); err != nil {
			log.Debugf("handle error for client %s: %v", clientID, err)
			wsc.sendError(writer, err.Error())
		}
	}
}

// handleMessage applies one client message; the resulting snapshot reaches
// every subscriber, this connection included, through the game broadcast.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	var err error
	switch msg.Type {
	case ws.MessageTypeSelect:
		var payload ws.SelectPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("invalid select payload: %w", err)
		}
		_, err = wsc.gameService.SelectSquare(gameID, model.Position{Row: payload.Row, Col: payload.Col})
	case ws.MessageTypeStart:
		_, err = wsc.gameService.StartGame(gameID)
	case ws.MessageTypeReset:
		_, err = wsc.gameService.ResetGame(gameID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
	return err
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(w *connWriter, errorMsg string) {
	if err := w.WriteJSON(ws.NewErrorMessage(errorMsg)); err != nil {
		log.Debugf("failed to send error message: %v", err)
	}
}
