package models

import "time"

// Chat entry kinds. Mirrors what the bot accepts as an answer.
const (
	EntryKindText      = "text"
	EntryKindVoice     = "voice"
	EntryKindVideoNote = "video_note"
)

// ChatEntry is one message contributed during a question's exchange, stored in
// PostgreSQL. The auto-increment ID is the sequence number and the sole
// ordering key; wall-clock time is never trusted for ordering.
type ChatEntry struct {
	ID uint `gorm:"primaryKey"`

	// RoomID is the room the entry belongs to.
	RoomID string `gorm:"size:32;not null;index:idx_entries_room_question"`
	// QuestionIndex scopes the entry to one question of the topic.
	QuestionIndex int `gorm:"not null;index:idx_entries_room_question"`
	// AuthorID is the Telegram chat ID of the sender.
	AuthorID int64 `gorm:"not null"`
	// Kind is one of EntryKindText, EntryKindVoice, EntryKindVideoNote.
	Kind string `gorm:"size:16;not null;default:'text'"`
	// Payload holds the message text, or the Telegram file ID for media.
	Payload string `gorm:"type:text;not null"`

	CreatedAt time.Time
}

// IsMedia reports whether the payload is a Telegram file ID rather than text.
func (e *ChatEntry) IsMedia() bool {
	return e.Kind == EntryKindVoice || e.Kind == EntryKindVideoNote
}
