package models

// Room event types published to Redis for the WebSocket observer stream.
const (
	EventMessage  = "message"
	EventRevealed = "revealed"
	EventAdvanced = "advanced"
	EventFinished = "finished"
)

// RoomEvent is the JSON payload fanned out on the "room:<id>" Redis channel
// whenever the delivery layer acts on a coordinator decision.
type RoomEvent struct {
	RoomID        string `json:"room_id"`
	Type          string `json:"type"`
	QuestionIndex int    `json:"question_index"`
	// Role tags the acting participant ("player1"/"player2") without leaking
	// Telegram IDs to observers.
	Role    string `json:"role,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Content string `json:"content,omitempty"`
}
