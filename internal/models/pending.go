package models

// Pending action kinds for the bot's multi-step dialogs (joining by code,
// authoring a topic). Exactly one kind is set per participant at a time.
const (
	PendingNone          = ""
	PendingAwaitRoomID   = "await_room_id"
	PendingAwaitTopic    = "await_topic_name"
	PendingAwaitQuestion = "await_questions"
)

// PendingAction is the typed replacement for the loose per-user state strings
// the bot dialogs need. It is stored as JSON in Redis keyed by chat ID so a
// restarted process keeps half-finished dialogs.
type PendingAction struct {
	Kind string `json:"kind"`
	// TopicName carries the draft name between the two topic-authoring steps.
	TopicName string `json:"topic_name,omitempty"`
}

// IsZero reports whether no dialog is in progress.
func (p PendingAction) IsZero() bool {
	return p.Kind == PendingNone
}
