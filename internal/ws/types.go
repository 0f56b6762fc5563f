package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeSelect    MessageType = "select"
	MessageTypeStart     MessageType = "start"
	MessageTypeReset     MessageType = "reset"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SelectPayload is the body of a select message and of the REST select call.
type SelectPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func NewErrorMessage(errorMsg string) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: errorMsg})
	return Message{
		Type:    MessageTypeError,
		Payload: json.RawMessage(payload),
	}
}
